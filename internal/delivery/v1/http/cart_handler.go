package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// CartHandler обслуживает корзину и избранное покупателя. owner это идентификатор
// покупателя или сессии, который выдаёт клиент.
type CartHandler struct {
	cartUsecase     usecase.CartUC
	wishlistUsecase usecase.WishlistUC
	logger          logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, wishlistUsecase usecase.WishlistUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, wishlistUsecase: wishlistUsecase, logger: logger}
}

// getCart
//
//	@Summary	Корзина с ценами
//	@Tags		carts
//	@Produce	json
//	@Param		owner	path		string	true	"Владелец"
//	@Success	200		{object}	CartResponse
//	@Router		/carts/{owner} [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	view, err := c.cartUsecase.GetCart(r.Context(), chi.URLParam(r, "owner"))
	c.writeCart(w, view, err)
}

// addItem
//
//	@Summary	Добавить товар в корзину
//	@Tags		carts
//	@Accept		json
//	@Produce	json
//	@Param		owner	path		string			true	"Владелец"
//	@Param		body	body		CartItemRequest	true	"Товар и количество"
//	@Success	200		{object}	CartResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/carts/{owner}/items [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var body CartItemRequest
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	view, err := c.cartUsecase.AddToCart(r.Context(), usecase.NewCartItemReq(chi.URLParam(r, "owner"), body.ProductID, body.Quantity))
	c.writeCart(w, view, err)
}

// updateItem
//
//	@Summary	Изменить количество (меньше 1 удаляет строку)
//	@Tags		carts
//	@Accept		json
//	@Produce	json
//	@Param		owner		path		string			true	"Владелец"
//	@Param		productId	path		integer			true	"ID товара"
//	@Param		body		body		QuantityRequest	true	"Количество"
//	@Success	200			{object}	CartResponse
//	@Router		/carts/{owner}/items/{productId} [put]
func (c *CartHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	productID, err := pathInt64(r, "productId")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body QuantityRequest
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	view, err := c.cartUsecase.UpdateQuantity(r.Context(), usecase.NewCartItemReq(chi.URLParam(r, "owner"), productID, body.Quantity))
	c.writeCart(w, view, err)
}

// removeItem
//
//	@Summary	Удалить товар из корзины
//	@Tags		carts
//	@Produce	json
//	@Param		owner		path		string	true	"Владелец"
//	@Param		productId	path		integer	true	"ID товара"
//	@Success	200			{object}	CartResponse
//	@Router		/carts/{owner}/items/{productId} [delete]
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID, err := pathInt64(r, "productId")
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := c.cartUsecase.RemoveFromCart(r.Context(), chi.URLParam(r, "owner"), productID)
	c.writeCart(w, view, err)
}

// clearCart
//
//	@Summary	Очистить корзину
//	@Tags		carts
//	@Param		owner	path	string	true	"Владелец"
//	@Success	204
//	@Router		/carts/{owner} [delete]
func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := c.cartUsecase.ClearCart(r.Context(), chi.URLParam(r, "owner")); err != nil {
		c.logger.Warnf("clear cart: %v", err)
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *CartHandler) writeCart(w http.ResponseWriter, view *usecase.CartView, err error) {
	if err != nil {
		c.logger.Warnf("cart: %v", err)
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toCartResponse(view))
}

// getWishlist
//
//	@Summary	Избранное
//	@Tags		wishlists
//	@Produce	json
//	@Param		owner	path		string	true	"Владелец"
//	@Success	200		{object}	WishlistResponse
//	@Router		/wishlists/{owner} [get]
func (c *CartHandler) getWishlist(w http.ResponseWriter, r *http.Request) {
	view, err := c.wishlistUsecase.GetWishlist(r.Context(), chi.URLParam(r, "owner"))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toWishlistResponse(view))
}

// toggleWishlist
//
//	@Summary	Добавить в избранное или убрать из него
//	@Tags		wishlists
//	@Produce	json
//	@Param		owner		path		string	true	"Владелец"
//	@Param		productId	path		integer	true	"ID товара"
//	@Success	200			{object}	ToggleWishlistResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/wishlists/{owner}/items/{productId} [post]
func (c *CartHandler) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	productID, err := pathInt64(r, "productId")
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := c.wishlistUsecase.ToggleWishlist(r.Context(), chi.URLParam(r, "owner"), productID)
	if err != nil {
		WriteError(w, err)
		return
	}

	in := false
	for _, it := range view.Items {
		if it.ProductID == productID {
			in = true
			break
		}
	}

	WriteSuccess(w, http.StatusOK, ToggleWishlistResponse{WishlistResponse: toWishlistResponse(view), InWishlist: in})
}
