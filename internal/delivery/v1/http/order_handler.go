package http

import (
	"net/http"
	"strconv"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// OrderHandler: оформление заказов покупателем и смена статуса администратором.
type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// placeOrder
//
//	@Summary	Оформить заказ
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		owner	path		string				true	"Владелец"
//	@Param		body	body		PlaceOrderRequest	true	"Позиции, адрес, оплата и купон"
//	@Success	201		{object}	OrderDTO
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/orders/{owner} [post]
func (o *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var body PlaceOrderRequest
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.PlaceOrder(r.Context(), body.toUseCase(chi.URLParam(r, "owner")))
	if err != nil {
		o.logger.Warnf("place order: %v", err)
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusCreated, toOrderDTO(order))
}

// listOrders
//
//	@Summary	Заказы покупателя, новые первыми
//	@Tags		orders
//	@Produce	json
//	@Param		owner	path		string	true	"Владелец"
//	@Success	200		{object}	OrdersResponse
//	@Router		/orders/{owner} [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	orders, err := o.orderUsecase.ListOrders(r.Context(), owner)
	if err != nil {
		WriteError(w, err)
		return
	}

	res := OrdersResponse{Owner: owner, Orders: make([]OrderDTO, 0, len(orders))}
	for _, order := range orders {
		res.Orders = append(res.Orders, toOrderDTO(order))
	}
	WriteSuccess(w, http.StatusOK, res)
}

// getOrder
//
//	@Summary	Заказ покупателя
//	@Tags		orders
//	@Produce	json
//	@Param		owner	path		string	true	"Владелец"
//	@Param		orderId	path		integer	true	"ID заказа"
//	@Success	200		{object}	OrderDTO
//	@Failure	404		{object}	ErrorResponse
//	@Router		/orders/{owner}/{orderId} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.GetOrder(r.Context(), chi.URLParam(r, "owner"), id)
	o.writeOrder(w, order, err)
}

// cancelOrder
//
//	@Summary	Отменить заказ (только Pending или Processing)
//	@Tags		orders
//	@Produce	json
//	@Param		owner	path		string	true	"Владелец"
//	@Param		orderId	path		integer	true	"ID заказа"
//	@Success	200		{object}	OrderDTO
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/orders/{owner}/{orderId}/cancel [post]
func (o *OrderHandler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.CancelOrder(r.Context(), chi.URLParam(r, "owner"), id)
	o.writeOrder(w, order, err)
}

// updateOrderStatus
//
//	@Summary	Сменить статус заказа
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		integer						true	"ID заказа"
//	@Param		body	body		UpdateOrderStatusRequest	true	"Новый статус"
//	@Success	200		{object}	OrderDTO
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/admin/orders/{orderId}/status [put]
func (o *OrderHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var body UpdateOrderStatusRequest
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.UpdateOrderStatus(r.Context(), id, body.Status)
	o.writeOrder(w, order, err)
}

func (o *OrderHandler) writeOrder(w http.ResponseWriter, order *domain.Order, err error) {
	if err != nil {
		o.logger.Warnf("order: %v", err)
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toOrderDTO(order))
}

// orderID: нечисловой ID отвечает 404, как и чужой заказ.
func orderID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap("orderId", e.ErrOrderNotFound)
	}
	return id, nil
}
