package domain

import "strings"

// AddressLimit ограничивает адресную книгу одного покупателя.
const AddressLimit = 20

// ShippingAddress — куда доставить заказ. В заказе хранится копией,
// чтобы правка адресной книги не меняла уже оформленные заказы.
type ShippingAddress struct {
	FullName string
	Street   string
	City     string
	State    string
	ZipCode  string
	Phone    string
}

// Normalize возвращает копию с обрезанными пробелами.
func (s ShippingAddress) Normalize() ShippingAddress {
	return ShippingAddress{
		FullName: strings.TrimSpace(s.FullName),
		Street:   strings.TrimSpace(s.Street),
		City:     strings.TrimSpace(s.City),
		State:    strings.TrimSpace(s.State),
		ZipCode:  strings.TrimSpace(s.ZipCode),
		Phone:    strings.TrimSpace(s.Phone),
	}
}

// Complete: заполнены имя, адрес, город и телефон. Регион и индекс необязательны.
func (s ShippingAddress) Complete() bool {
	return s.FullName != "" && s.Street != "" && s.City != "" && s.Phone != ""
}

type Address struct {
	ID string
	ShippingAddress
	IsDefault bool
}

// AddressBook — адреса покупателя. Если адреса есть, ровно один из них по умолчанию.
type AddressBook struct {
	Owner     string
	Addresses []Address
}

func NewAddressBook(owner string) *AddressBook {
	return &AddressBook{Owner: owner, Addresses: make([]Address, 0)}
}

func (b *AddressBook) Find(id string) (Address, bool) {
	if i := b.index(id); i >= 0 {
		return b.Addresses[i], true
	}
	return Address{}, false
}

// Default возвращает адрес по умолчанию, а если флаг потерян, первый адрес.
func (b *AddressBook) Default() (Address, bool) {
	for _, a := range b.Addresses {
		if a.IsDefault {
			return a, true
		}
	}
	if len(b.Addresses) > 0 {
		return b.Addresses[0], true
	}
	return Address{}, false
}

// Add добавляет адрес. Первый адрес всегда становится адресом по умолчанию.
// Возвращает false, если книга заполнена.
func (b *AddressBook) Add(a Address) bool {
	if len(b.Addresses) >= AddressLimit {
		return false
	}

	a.IsDefault = a.IsDefault || len(b.Addresses) == 0
	if a.IsDefault {
		b.clearDefault()
	}
	b.Addresses = append(b.Addresses, a)
	return true
}

// Update заменяет поля адреса с тем же ID. Снять флаг по умолчанию так нельзя,
// только назначить другой адрес через SetDefault.
func (b *AddressBook) Update(a Address) bool {
	i := b.index(a.ID)
	if i < 0 {
		return false
	}

	a.IsDefault = a.IsDefault || b.Addresses[i].IsDefault
	if a.IsDefault {
		b.clearDefault()
	}
	b.Addresses[i] = a
	return true
}

// Remove удаляет адрес; если он был по умолчанию, флаг переходит к первому оставшемуся.
func (b *AddressBook) Remove(id string) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}

	wasDefault := b.Addresses[i].IsDefault
	b.Addresses = append(b.Addresses[:i], b.Addresses[i+1:]...)
	if wasDefault && len(b.Addresses) > 0 {
		b.Addresses[0].IsDefault = true
	}
	return true
}

func (b *AddressBook) SetDefault(id string) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}

	b.clearDefault()
	b.Addresses[i].IsDefault = true
	return true
}

func (b *AddressBook) index(id string) int {
	for i := range b.Addresses {
		if b.Addresses[i].ID == id {
			return i
		}
	}
	return -1
}

func (b *AddressBook) clearDefault() {
	for i := range b.Addresses {
		b.Addresses[i].IsDefault = false
	}
}
