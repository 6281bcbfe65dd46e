package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type QuoteHandler struct {
	quoteUsecase usecase.QuoteUC
	logger       logger.Logger
}

func NewQuoteHandler(quoteUsecase usecase.QuoteUC, logger logger.Logger) *QuoteHandler {
	return &QuoteHandler{quoteUsecase: quoteUsecase, logger: logger}
}

// getPrice
//
//	@Summary	Цена товара для количества
//	@Tags		quotes
//	@Produce	json
//	@Param		id			path		integer	true	"ID товара"
//	@Param		quantity	query		number	false	"Количество (по умолчанию 1; дробное округляется вниз, нечисловое и отрицательное считается нулём)"
//	@Success	200			{object}	PriceResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/products/{id}/price [get]
func (q *QuoteHandler) getPrice(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	quantity := parseQuantity(r.URL.Query().Get("quantity"))
	res, err := q.quoteUsecase.QuoteProduct(r.Context(), usecase.NewQuoteProductReq(id, quantity))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, PriceResponse{
		ProductID: id,
		Quantity:  quantity,
		Product:   toProductDTO(&res.Product),
		Pricing:   toPricingDTO(res.Pricing),
	})
}

// quoteCart
//
//	@Summary	Расчёт корзины
//	@Tags		quotes
//	@Accept		json
//	@Produce	json
//	@Param		body	body		QuoteRequest	true	"Позиции"
//	@Success	200		{object}	QuoteResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/quotes [post]
func (q *QuoteHandler) quoteCart(w http.ResponseWriter, r *http.Request) {
	var body QuoteRequest
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	items := make([]usecase.QuoteItem, 0, len(body.Items))
	for _, it := range body.Items {
		items = append(items, usecase.QuoteItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	res, err := q.quoteUsecase.QuoteCart(r.Context(), usecase.NewQuoteCartReq(items))
	if err != nil {
		q.logger.Debugf("quote cart: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, QuoteResponse{
		Lines:            toLineDTOs(res.Lines),
		Subtotal:         res.Subtotal,
		ItemCount:        res.ItemCount,
		NotFoundProducts: nonNil(res.NotFoundProducts),
	})
}
