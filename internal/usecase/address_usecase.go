package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/google/uuid"
)

// AddressUseCase ведёт адресную книгу покупателя для оформления заказа.
type AddressUseCase struct {
	addressRepo AddressRepository
}

func NewAddressUC(addressRepo AddressRepository) *AddressUseCase {
	return &AddressUseCase{addressRepo: addressRepo}
}

func (a *AddressUseCase) ListAddresses(ctx context.Context, owner string) ([]domain.Address, error) {
	const op = "AddressUseCase.ListAddresses"

	if err := validateOwner(owner); err != nil {
		return nil, e.Wrap(op, err)
	}

	book, err := a.addressRepo.Get(ctx, owner)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return book.Addresses, nil
}

// AddAddress сохраняет адрес с новым ID. Первый адрес становится адресом по умолчанию.
func (a *AddressUseCase) AddAddress(ctx context.Context, req *AddressReq) (*domain.Address, error) {
	const op = "AddressUseCase.AddAddress"

	address, err := newAddress(req, uuid.NewString())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	book, err := a.addressRepo.Update(ctx, req.Owner, func(book *domain.AddressBook) (bool, error) {
		if !book.Add(address) {
			return false, e.ErrTooManyAddresses
		}
		return true, nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return stored(book, address.ID)
}

func (a *AddressUseCase) UpdateAddress(ctx context.Context, req *AddressReq) (*domain.Address, error) {
	const op = "AddressUseCase.UpdateAddress"

	address, err := newAddress(req, strings.TrimSpace(req.ID))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	book, err := a.addressRepo.Update(ctx, req.Owner, func(book *domain.AddressBook) (bool, error) {
		if !book.Update(address) {
			return false, e.ErrAddressNotFound
		}
		return true, nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return stored(book, address.ID)
}

func (a *AddressUseCase) SetDefaultAddress(ctx context.Context, owner, id string) ([]domain.Address, error) {
	const op = "AddressUseCase.SetDefaultAddress"

	return a.change(ctx, op, owner, func(book *domain.AddressBook) bool {
		return book.SetDefault(id)
	})
}

// DeleteAddress удаляет адрес и возвращает оставшиеся.
func (a *AddressUseCase) DeleteAddress(ctx context.Context, owner, id string) ([]domain.Address, error) {
	const op = "AddressUseCase.DeleteAddress"

	return a.change(ctx, op, owner, func(book *domain.AddressBook) bool {
		return book.Remove(id)
	})
}

func (a *AddressUseCase) change(ctx context.Context, op, owner string, fn func(*domain.AddressBook) bool) ([]domain.Address, error) {
	if err := validateOwner(owner); err != nil {
		return nil, e.Wrap(op, err)
	}

	book, err := a.addressRepo.Update(ctx, owner, func(book *domain.AddressBook) (bool, error) {
		if !fn(book) {
			return false, e.ErrAddressNotFound
		}
		return true, nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return book.Addresses, nil
}

func newAddress(req *AddressReq, id string) (domain.Address, error) {
	if err := validateOwner(req.Owner); err != nil {
		return domain.Address{}, err
	}
	if id == "" {
		return domain.Address{}, e.ErrAddressNotFound
	}

	shipping := req.Address.Normalize()
	if !shipping.Complete() {
		return domain.Address{}, e.ErrAddressFieldsRequired
	}

	return domain.Address{ID: id, ShippingAddress: shipping, IsDefault: req.IsDefault}, nil
}

func stored(book *domain.AddressBook, id string) (*domain.Address, error) {
	address, ok := book.Find(id)
	if !ok {
		return nil, e.ErrAddressNotFound
	}
	return &address, nil
}

// resolveAddress выбирает адрес доставки заказа.
func resolveAddress(ctx context.Context, repo AddressRepository, req *PlaceOrderReq) (domain.ShippingAddress, error) {
	if req.Address != nil {
		shipping := req.Address.Normalize()
		if !shipping.Complete() {
			return domain.ShippingAddress{}, e.ErrAddressFieldsRequired
		}
		return shipping, nil
	}

	book, err := repo.Get(ctx, req.Owner)
	if err != nil {
		return domain.ShippingAddress{}, err
	}

	if id := strings.TrimSpace(req.AddressID); id != "" {
		address, ok := book.Find(id)
		if !ok {
			return domain.ShippingAddress{}, e.ErrAddressNotFound
		}
		return address.ShippingAddress, nil
	}

	address, ok := book.Default()
	if !ok {
		return domain.ShippingAddress{}, e.ErrAddressRequired
	}
	return address.ShippingAddress, nil
}
