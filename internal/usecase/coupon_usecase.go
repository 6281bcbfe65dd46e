package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// CouponUseCase заводит купоны и считает скидку по ним для корзины покупателя.
type CouponUseCase struct {
	couponRepo CouponRepository
	cartRepo   CartRepository
	products   ProductsReader
	now        func() time.Time
}

func NewCouponUC(couponRepo CouponRepository, cartRepo CartRepository, products ProductsReader) *CouponUseCase {
	return &CouponUseCase{couponRepo: couponRepo, cartRepo: cartRepo, products: products, now: time.Now}
}

// CreateCoupon создаёт купон или заменяет купон с тем же кодом.
func (c *CouponUseCase) CreateCoupon(ctx context.Context, req *CreateCouponReq) (*domain.Coupon, error) {
	const op = "CouponUseCase.CreateCoupon"

	coupon := &domain.Coupon{
		Code:        domain.NormalizeCouponCode(req.Code),
		Kind:        domain.CouponKind(req.Kind),
		Value:       req.Value,
		MinSubtotal: req.MinSubtotal,
		Active:      req.Active,
		ExpiresAt:   req.ExpiresAt,
	}
	if !coupon.Valid() {
		return nil, e.Wrap(op, e.ErrInvalidCoupon)
	}

	saved, err := c.couponRepo.Upsert(ctx, coupon)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return saved, nil
}

// ApplyCoupon считает скидку по купону для сохранённой корзины. Итог не опускается ниже нуля.
func (c *CouponUseCase) ApplyCoupon(ctx context.Context, owner, code string) (*CouponQuote, error) {
	const op = "CouponUseCase.ApplyCoupon"

	if err := validateOwner(owner); err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, err := c.cartRepo.Get(ctx, owner)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(cart.Items) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyOrder)
	}

	priced, err := priceItems(ctx, c.products, cartItems(cart))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	coupon, discount, err := couponDiscount(ctx, c.couponRepo, code, priced.Subtotal, c.now())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CouponQuote{
		Code:     coupon.Code,
		Subtotal: priced.Subtotal,
		Discount: discount,
		Total:    domain.AfterDiscount(priced.Subtotal, discount),
	}, nil
}

// couponDiscount находит купон и проверяет, что его можно применить к подытогу.
func couponDiscount(ctx context.Context, repo CouponRepository, code string, subtotal decimal.Decimal, now time.Time) (*domain.Coupon, decimal.Decimal, error) {
	code = domain.NormalizeCouponCode(code)
	if code == "" {
		return nil, decimal.Zero, e.ErrInvalidCoupon
	}

	coupon, err := repo.GetByCode(ctx, code)
	if err != nil {
		return nil, decimal.Zero, err
	}

	switch {
	case !coupon.Active:
		return nil, decimal.Zero, e.ErrCouponInactive
	case coupon.Expired(now):
		return nil, decimal.Zero, e.ErrCouponExpired
	case subtotal.LessThan(coupon.MinSubtotal):
		return nil, decimal.Zero, e.ErrCouponMinSubtotal
	}

	return coupon, coupon.Discount(subtotal), nil
}

func cartItems(cart *domain.Cart) []QuoteItem {
	items := make([]QuoteItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, QuoteItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return items
}
