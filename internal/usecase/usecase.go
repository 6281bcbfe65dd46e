package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

type ProductUC interface {
	RegisterNewProduct(ctx context.Context, req *AddNewProductReq) (*RegisterProductRes, error)
	SetQuantityDiscounts(ctx context.Context, req *SetDiscountsReq) (*OutboxEvent, error)
	GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
}

type QuoteUC interface {
	QuoteProduct(ctx context.Context, req *QuoteProductReq) (*QuoteProductRes, error)
	QuoteCart(ctx context.Context, req *QuoteCartReq) (*QuoteCartRes, error)
}

type CartUC interface {
	GetCart(ctx context.Context, owner string) (*CartView, error)
	AddToCart(ctx context.Context, req *CartItemReq) (*CartView, error)
	UpdateQuantity(ctx context.Context, req *CartItemReq) (*CartView, error)
	RemoveFromCart(ctx context.Context, owner string, productID int64) (*CartView, error)
	ClearCart(ctx context.Context, owner string) error
}

type WishlistUC interface {
	GetWishlist(ctx context.Context, owner string) (*WishlistView, error)
	ToggleWishlist(ctx context.Context, owner string, productID int64) (*WishlistView, error)
	IsInWishlist(ctx context.Context, owner string, productID int64) (bool, error)
}

type SettingsUC interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, req *UpdateSettingsReq) (*domain.Settings, error)
}

type AddressUC interface {
	ListAddresses(ctx context.Context, owner string) ([]domain.Address, error)
	AddAddress(ctx context.Context, req *AddressReq) (*domain.Address, error)
	UpdateAddress(ctx context.Context, req *AddressReq) (*domain.Address, error)
	SetDefaultAddress(ctx context.Context, owner, id string) ([]domain.Address, error)
	DeleteAddress(ctx context.Context, owner, id string) ([]domain.Address, error)
}

type CouponUC interface {
	CreateCoupon(ctx context.Context, req *CreateCouponReq) (*domain.Coupon, error)
	ApplyCoupon(ctx context.Context, owner, code string) (*CouponQuote, error)
}

type OrderUC interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Order, error)
	ListOrders(ctx context.Context, owner string) ([]*domain.Order, error)
	GetOrder(ctx context.Context, owner string, id int64) (*domain.Order, error)
	CancelOrder(ctx context.Context, owner string, id int64) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
}

// ProductsReader — чтение каталога, которым пользуются расчёт цен, корзина и избранное.
type ProductsReader interface {
	GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
}
