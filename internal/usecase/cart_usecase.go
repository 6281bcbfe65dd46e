package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

const maxOwnerLen = 128

// CartUseCase управляет корзиной покупателя. Корзина хранится через CartRepository,
// цены всегда пересчитываются по актуальному каталогу.
type CartUseCase struct {
	cartRepo CartRepository
	products ProductsReader
	logger   logger.Logger
}

func NewCartUC(cartRepo CartRepository, products ProductsReader, logger logger.Logger) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, products: products, logger: logger}
}

// GetCart возвращает корзину с посчитанными ценами.
func (c *CartUseCase) GetCart(ctx context.Context, owner string) (*CartView, error) {
	const op = "CartUseCase.GetCart"

	if err := validateOwner(owner); err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, err := c.cartRepo.Get(ctx, owner)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.view(ctx, op, cart)
}

// AddToCart добавляет товар; количество строки ограничено остатком (или 999, если остаток неизвестен).
func (c *CartUseCase) AddToCart(ctx context.Context, req *CartItemReq) (*CartView, error) {
	const op = "CartUseCase.AddToCart"

	if err := validateItemReq(req); err != nil {
		return nil, e.Wrap(op, err)
	}
	if req.Quantity < 1 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	product, err := c.product(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	limit := domain.LineLimit(product.Stock)
	cart, err := c.cartRepo.Update(ctx, req.Owner, func(cart *domain.Cart) (bool, error) {
		cart.Add(req.ProductID, req.Quantity, limit)
		return true, nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.view(ctx, op, cart)
}

// UpdateQuantity задаёт количество строки; значение меньше 1 удаляет товар из корзины.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, req *CartItemReq) (*CartView, error) {
	const op = "CartUseCase.UpdateQuantity"

	if err := validateItemReq(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, err := c.cartRepo.Update(ctx, req.Owner, func(cart *domain.Cart) (bool, error) {
		return cart.SetQuantity(req.ProductID, req.Quantity), nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.view(ctx, op, cart)
}

func (c *CartUseCase) RemoveFromCart(ctx context.Context, owner string, productID int64) (*CartView, error) {
	return c.UpdateQuantity(ctx, NewCartItemReq(owner, productID, 0))
}

func (c *CartUseCase) ClearCart(ctx context.Context, owner string) error {
	const op = "CartUseCase.ClearCart"

	if err := validateOwner(owner); err != nil {
		return e.Wrap(op, err)
	}

	if err := c.cartRepo.Delete(ctx, owner); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *CartUseCase) product(ctx context.Context, productID int64) (*ProductInfo, error) {
	res, err := c.products.GetProductsInfo(ctx, NewGetProductsReq([]int64{productID}))
	if err != nil {
		return nil, err
	}
	if len(res.Products) == 0 {
		return nil, e.ErrProductNotFound
	}

	return &res.Products[0], nil
}

func (c *CartUseCase) view(ctx context.Context, op string, cart *domain.Cart) (*CartView, error) {
	priced, err := priceItems(ctx, c.products, cartItems(cart))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(priced.NotFoundProducts) > 0 {
		c.logger.Warnf("%s: cart %s references missing products %v", op, cart.Owner, priced.NotFoundProducts)
	}

	return &CartView{
		Owner:            cart.Owner,
		Lines:            priced.Lines,
		Total:            priced.Subtotal,
		Count:            priced.ItemCount,
		NotFoundProducts: priced.NotFoundProducts,
	}, nil
}

func validateOwner(owner string) error {
	if strings.TrimSpace(owner) == "" || len(owner) > maxOwnerLen {
		return e.ErrInvalidOwner
	}
	return nil
}

func validateItemReq(req *CartItemReq) error {
	if err := validateOwner(req.Owner); err != nil {
		return err
	}
	if req.ProductID <= 0 {
		return e.ErrInvalidProductID
	}
	return nil
}
