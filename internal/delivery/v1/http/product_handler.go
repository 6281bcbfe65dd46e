package http

import (
	"errors"
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// registerNewProduct
//
//	@Summary		Регистрация товара
//	@Description	Создаёт или обновляет товар по имени вместе с оптовыми скидками и изображениями
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string					true	"Название товара"
//	@Param			category	formData	string					true	"Категория"
//	@Param			price		formData	number					true	"Цена"
//	@Param			stock		formData	integer					false	"Остаток"
//	@Param			discounts	formData	string					false	"JSON-массив [{minQty, discountPercent}]"
//	@Param			images		formData	file					false	"Изображения товара"
//	@Success		201			{object}	RegisterProductResponse	"Товар создан или изменён"
//	@Success		200			{object}	RegisterProductResponse	"Изменений нет"
//	@Failure		400			{object}	ErrorResponse			"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) registerNewProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	prMeta, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil && !errors.Is(err, e.ErrNoImages) {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.RegisterNewProduct(r.Context(), usecase.NewAddNewProductReq(
		prMeta.Name,
		prMeta.CategoryName,
		prMeta.Price,
		prMeta.Stock,
		toDomainTiers(prMeta.Tiers),
		images,
	))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if res.NoChanges {
		WriteSuccess(w, http.StatusOK, RegisterProductResponse{ProductID: res.ProductID, EventID: res.EventID})
		return
	}
	WriteSuccess(w, http.StatusCreated, RegisterProductResponse{ProductID: res.ProductID, EventID: res.EventID, Changed: true})
}

// setDiscounts
//
//	@Summary	Замена оптовых скидок товара
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		integer				true	"ID товара"
//	@Param		body	body		SetDiscountsRequest	true	"Новый набор скидок"
//	@Success	200		{object}	map[string]string
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/products/{id}/discounts [put]
func (p *ProductHandler) setDiscounts(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body SetDiscountsRequest
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	event, err := p.productUsecase.SetQuantityDiscounts(r.Context(), usecase.NewSetDiscountsReq(id, toDomainTiers(body.Tiers)))
	if err != nil {
		p.logger.Warnf("set discounts for product %d: %v", id, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]string{"eventId": event.EventID})
}

// getProducts
//
//	@Summary	Информация о товарах
//	@Tags		products
//	@Produce	json
//	@Param		ids	query		string	true	"ID через запятую"
//	@Success	200	{object}	ProductsResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/products [get]
func (p *ProductHandler) getProducts(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDs(r.URL.Query().Get("ids"))
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.GetProductsInfo(r.Context(), usecase.NewGetProductsReq(ids))
	if err != nil {
		p.logger.Errorf(err, "get products info")
		WriteError(w, err)
		return
	}

	products := make([]ProductDTO, 0, len(res.Products))
	for i := range res.Products {
		products = append(products, toProductDTO(&res.Products[i]))
	}

	WriteSuccess(w, http.StatusOK, ProductsResponse{Products: products, NotFoundProducts: nonNil(res.NotFoundProducts)})
}
