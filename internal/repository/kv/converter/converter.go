package converter

import "github.com/DRSN-tech/storefront-backend/internal/domain"

type CartConverter struct{}

func (CartConverter) ToModel(cart *domain.Cart) *CartModel {
	m := &CartModel{Owner: cart.Owner, Items: make([]CartItemModel, 0, len(cart.Items))}
	for _, it := range cart.Items {
		m.Items = append(m.Items, CartItemModel{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return m
}

// ToEntity отбрасывает строки с некорректным количеством или ID.
func (CartConverter) ToEntity(m *CartModel) *domain.Cart {
	cart := domain.NewCart(m.Owner)
	for _, it := range m.Items {
		if it.ProductID <= 0 || it.Quantity < 1 {
			continue
		}
		cart.Items = append(cart.Items, domain.CartItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return cart
}

type WishlistConverter struct{}

func (WishlistConverter) ToModel(w *domain.Wishlist) *WishlistModel {
	m := &WishlistModel{Owner: w.Owner, Items: make([]WishlistItemModel, 0, len(w.Items))}
	for _, it := range w.Items {
		m.Items = append(m.Items, WishlistItemModel(it))
	}
	return m
}

func (WishlistConverter) ToEntity(m *WishlistModel) *domain.Wishlist {
	w := domain.NewWishlist(m.Owner)
	for _, it := range m.Items {
		if it.ProductID <= 0 {
			continue
		}
		w.Items = append(w.Items, domain.WishlistItem(it))
	}
	return w
}

type AddressConverter struct{}

func (AddressConverter) ToModel(b *domain.AddressBook) *AddressBookModel {
	m := &AddressBookModel{Owner: b.Owner, Items: make([]AddressModel, 0, len(b.Addresses))}
	for _, a := range b.Addresses {
		m.Items = append(m.Items, AddressModel{
			ID:        a.ID,
			FullName:  a.FullName,
			Address:   a.Street,
			City:      a.City,
			State:     a.State,
			ZipCode:   a.ZipCode,
			Phone:     a.Phone,
			IsDefault: a.IsDefault,
		})
	}
	return m
}

// ToEntity пропускает записи без ID.
func (AddressConverter) ToEntity(m *AddressBookModel) *domain.AddressBook {
	b := domain.NewAddressBook(m.Owner)
	for _, it := range m.Items {
		if it.ID == "" {
			continue
		}
		b.Addresses = append(b.Addresses, domain.Address{
			ID: it.ID,
			ShippingAddress: domain.ShippingAddress{
				FullName: it.FullName,
				Street:   it.Address,
				City:     it.City,
				State:    it.State,
				ZipCode:  it.ZipCode,
				Phone:    it.Phone,
			},
			IsDefault: it.IsDefault,
		})
	}
	return b
}
