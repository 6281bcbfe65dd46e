package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type CouponHandler struct {
	couponUsecase usecase.CouponUC
	logger        logger.Logger
}

func NewCouponHandler(couponUsecase usecase.CouponUC, logger logger.Logger) *CouponHandler {
	return &CouponHandler{couponUsecase: couponUsecase, logger: logger}
}

// createCoupon
//
//	@Summary	Создать купон или перезаписать купон с тем же кодом
//	@Tags		coupons
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CreateCouponRequest	true	"Купон"
//	@Success	201		{object}	CouponDTO
//	@Failure	400		{object}	ErrorResponse
//	@Router		/coupons [post]
func (c *CouponHandler) createCoupon(w http.ResponseWriter, r *http.Request) {
	var body CreateCouponRequest
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	coupon, err := c.couponUsecase.CreateCoupon(r.Context(), body.toUseCase())
	if err != nil {
		c.logger.Warnf("create coupon: %v", err)
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusCreated, toCouponDTO(coupon))
}

// applyCoupon
//
//	@Summary	Применить купон к корзине без оформления заказа
//	@Tags		coupons
//	@Accept		json
//	@Produce	json
//	@Param		body	body		ApplyCouponRequest	true	"Покупатель и код"
//	@Success	200		{object}	ApplyCouponResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/coupons/apply [post]
func (c *CouponHandler) applyCoupon(w http.ResponseWriter, r *http.Request) {
	var body ApplyCouponRequest
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	quote, err := c.couponUsecase.ApplyCoupon(r.Context(), body.Owner, body.Code)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, ApplyCouponResponse{
		Code:       quote.Code,
		CartTotal:  quote.Subtotal,
		Discount:   quote.Discount,
		FinalTotal: quote.Total,
	})
}
