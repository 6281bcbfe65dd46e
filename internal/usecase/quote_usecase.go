package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/shopspring/decimal"
)

const maxQuoteItems = 200

// QuoteUseCase считает цены с учётом оптовых скидок для карточки товара и оформления заказа.
type QuoteUseCase struct {
	products ProductsReader
}

func NewQuoteUC(products ProductsReader) *QuoteUseCase {
	return &QuoteUseCase{products: products}
}

// QuoteProduct возвращает цену продукта для указанного количества.
func (q *QuoteUseCase) QuoteProduct(ctx context.Context, req *QuoteProductReq) (*QuoteProductRes, error) {
	const op = "QuoteUseCase.QuoteProduct"

	if req.ProductID <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidProductID)
	}

	res, err := q.products.GetProductsInfo(ctx, NewGetProductsReq([]int64{req.ProductID}))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(res.Products) == 0 {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	product := res.Products[0]
	return &QuoteProductRes{
		Product: product,
		Pricing: domain.QuantityDiscount(&product, req.Quantity),
	}, nil
}

// QuoteCart считает позиции и итог корзины. Повторяющиеся позиции считаются отдельно.
func (q *QuoteUseCase) QuoteCart(ctx context.Context, req *QuoteCartReq) (*QuoteCartRes, error) {
	const op = "QuoteUseCase.QuoteCart"

	if len(req.Items) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyQuote)
	}
	if len(req.Items) > maxQuoteItems {
		return nil, e.Wrap(op, e.ErrTooManyQuoteItems)
	}
	for _, it := range req.Items {
		if it.ProductID <= 0 {
			return nil, e.Wrap(op, e.ErrInvalidProductID)
		}
	}

	res, err := priceItems(ctx, q.products, req.Items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}

// priceItems загружает продукты одним запросом и считает каждую позицию.
func priceItems(ctx context.Context, products ProductsReader, items []QuoteItem) (*QuoteCartRes, error) {
	res := &QuoteCartRes{
		Lines:            make([]QuoteLine, 0, len(items)),
		Subtotal:         decimal.Zero,
		NotFoundProducts: make([]int64, 0),
	}
	if len(items) == 0 {
		return res, nil
	}

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	found, err := products.GetProductsInfo(ctx, NewGetProductsReq(ids))
	if err != nil && !errors.Is(err, e.ErrNoProducts) {
		return nil, err
	}

	byID := make(map[int64]ProductInfo)
	if found != nil {
		for _, pr := range found.Products {
			byID[pr.ID] = pr
		}
	}

	for _, it := range items {
		product, ok := byID[it.ProductID]
		if !ok {
			res.NotFoundProducts = append(res.NotFoundProducts, it.ProductID)
			continue
		}

		quantity := max(it.Quantity, 0)
		pricing := domain.QuantityDiscount(&product, quantity)
		res.Lines = append(res.Lines, QuoteLine{
			Product:  product,
			Quantity: quantity,
			Pricing:  pricing,
		})
		res.Subtotal = res.Subtotal.Add(pricing.TotalPrice)
		res.ItemCount += quantity
	}

	return res, nil
}
