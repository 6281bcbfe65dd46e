package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// AddressHandler обслуживает адресную книгу покупателя.
type AddressHandler struct {
	addressUsecase usecase.AddressUC
	logger         logger.Logger
}

func NewAddressHandler(addressUsecase usecase.AddressUC, logger logger.Logger) *AddressHandler {
	return &AddressHandler{addressUsecase: addressUsecase, logger: logger}
}

// listAddresses
//
//	@Summary	Адреса покупателя
//	@Tags		addresses
//	@Produce	json
//	@Param		owner	path		string	true	"Владелец"
//	@Success	200		{object}	AddressesResponse
//	@Router		/addresses/{owner} [get]
func (a *AddressHandler) listAddresses(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	addresses, err := a.addressUsecase.ListAddresses(r.Context(), owner)
	a.writeAddresses(w, owner, addresses, err)
}

// addAddress
//
//	@Summary	Добавить адрес (первый становится адресом по умолчанию)
//	@Tags		addresses
//	@Accept		json
//	@Produce	json
//	@Param		owner	path		string			true	"Владелец"
//	@Param		body	body		AddressRequest	true	"Адрес"
//	@Success	201		{object}	SavedAddressDTO
//	@Failure	400		{object}	ErrorResponse
//	@Router		/addresses/{owner} [post]
func (a *AddressHandler) addAddress(w http.ResponseWriter, r *http.Request) {
	var body AddressRequest
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	saved, err := a.addressUsecase.AddAddress(r.Context(), &usecase.AddressReq{
		Owner:     chi.URLParam(r, "owner"),
		Address:   body.toDomain(),
		IsDefault: body.IsDefault,
	})
	if err != nil {
		a.logger.Warnf("add address: %v", err)
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusCreated, toSavedAddressDTO(saved))
}

// updateAddress
//
//	@Summary	Изменить адрес
//	@Tags		addresses
//	@Accept		json
//	@Produce	json
//	@Param		owner	path		string			true	"Владелец"
//	@Param		id		path		string			true	"ID адреса"
//	@Param		body	body		AddressRequest	true	"Адрес"
//	@Success	200		{object}	SavedAddressDTO
//	@Failure	404		{object}	ErrorResponse
//	@Router		/addresses/{owner}/{id} [put]
func (a *AddressHandler) updateAddress(w http.ResponseWriter, r *http.Request) {
	var body AddressRequest
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	saved, err := a.addressUsecase.UpdateAddress(r.Context(), &usecase.AddressReq{
		Owner:     chi.URLParam(r, "owner"),
		ID:        chi.URLParam(r, "id"),
		Address:   body.toDomain(),
		IsDefault: body.IsDefault,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toSavedAddressDTO(saved))
}

// setDefaultAddress
//
//	@Summary	Сделать адрес адресом по умолчанию
//	@Tags		addresses
//	@Produce	json
//	@Param		owner	path		string	true	"Владелец"
//	@Param		id		path		string	true	"ID адреса"
//	@Success	200		{object}	AddressesResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/addresses/{owner}/{id}/default [put]
func (a *AddressHandler) setDefaultAddress(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	addresses, err := a.addressUsecase.SetDefaultAddress(r.Context(), owner, chi.URLParam(r, "id"))
	a.writeAddresses(w, owner, addresses, err)
}

// deleteAddress
//
//	@Summary	Удалить адрес
//	@Tags		addresses
//	@Produce	json
//	@Param		owner	path		string	true	"Владелец"
//	@Param		id		path		string	true	"ID адреса"
//	@Success	200		{object}	AddressesResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/addresses/{owner}/{id} [delete]
func (a *AddressHandler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	addresses, err := a.addressUsecase.DeleteAddress(r.Context(), owner, chi.URLParam(r, "id"))
	a.writeAddresses(w, owner, addresses, err)
}

func (a *AddressHandler) writeAddresses(w http.ResponseWriter, owner string, addresses []domain.Address, err error) {
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toAddressesResponse(owner, addresses))
}
