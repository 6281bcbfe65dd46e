package usecase

import (
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// PRODUCT USECASE

// AddNewProductReq — запрос на добавление нового продукта.
type AddNewProductReq struct {
	Name              string
	CategoryName      string
	Price             int64 // в копейках
	Stock             int64
	QuantityDiscounts []domain.DiscountTier
	Images            []ProductImage
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// RegisterProductRes — результат регистрации продукта.
type RegisterProductRes struct {
	ProductID int64
	EventID   string
	NoChanges bool

	version int64
}

// SetDiscountsReq — замена набора оптовых скидок продукта.
type SetDiscountsReq struct {
	ProductID int64
	Tiers     []domain.DiscountTier
}

// GetProductsReq запрос информации о продуктах по их идентификаторам.
type GetProductsReq struct {
	IDs []int64
}

// GetProductsRes — ответ с данными запрошенных продуктов.
type GetProductsRes struct {
	Products         []ProductInfo
	NotFoundProducts []int64
}

// ProductInfo — DTO с информацией о продукте для внешнего использования.
type ProductInfo struct {
	ID                int64
	Name              string
	CategoryName      string
	Price             int64 // в копейках
	Stock             int64
	QuantityDiscounts []domain.DiscountTier
	// Version растёт при каждом изменении продукта или его скидок.
	Version int64
}

func (p *ProductInfo) BasePrice() decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return domain.PriceFromCents(p.Price)
}

func (p *ProductInfo) Tiers() []domain.DiscountTier {
	if p == nil {
		return nil
	}
	return p.QuantityDiscounts
}

// QUOTE USECASE

// QuoteProductReq — расчёт цены одного продукта для количества.
type QuoteProductReq struct {
	ProductID int64
	Quantity  int64
}

type QuoteProductRes struct {
	Product ProductInfo
	Pricing domain.PricingResult
}

// QuoteItem — позиция расчёта корзины.
type QuoteItem struct {
	ProductID int64
	Quantity  int64
}

type QuoteCartReq struct {
	Items []QuoteItem
}

// QuoteLine — рассчитанная позиция.
type QuoteLine struct {
	Product  ProductInfo
	Quantity int64
	Pricing  domain.PricingResult
}

// QuoteCartRes — итог для оформления заказа.
type QuoteCartRes struct {
	Lines            []QuoteLine
	Subtotal         decimal.Decimal
	ItemCount        int64
	NotFoundProducts []int64
}

// CART / WISHLIST USECASE

type CartItemReq struct {
	Owner     string
	ProductID int64
	Quantity  int64
}

// CartView — корзина с посчитанными ценами.
type CartView struct {
	Owner            string
	Lines            []QuoteLine
	Total            decimal.Decimal
	Count            int64
	NotFoundProducts []int64
}

type WishlistView struct {
	Owner string
	Items []domain.WishlistItem
}

// ADDRESS / COUPON / ORDER USECASE

// AddressReq — новый адрес или правка существующего (ID задан).
type AddressReq struct {
	Owner     string
	ID        string
	Address   domain.ShippingAddress
	IsDefault bool
}

// CreateCouponReq: Value в процентах для percent, в рублях для fixed.
type CreateCouponReq struct {
	Code        string
	Kind        string
	Value       decimal.Decimal
	MinSubtotal decimal.Decimal
	Active      bool
	ExpiresAt   *time.Time
}

// CouponQuote — скидка по купону для текущей корзины.
type CouponQuote struct {
	Code     string
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// PlaceOrderReq: пустой Items означает заказ из сохранённой корзины.
// Адрес берётся из Address, иначе по AddressID, иначе адрес по умолчанию.
type PlaceOrderReq struct {
	Owner         string
	Items         []QuoteItem
	AddressID     string
	Address       *domain.ShippingAddress
	PaymentMethod string
	CouponCode    string
}

// SETTINGS USECASE

// UpdateSettingsReq — частичное обновление настроек, nil-поля не меняются.
type UpdateSettingsReq struct {
	StoreName                *string
	StoreDescription         *string
	EnableEmailNotifications *bool
	NewOrder                 *bool
	LowStock                 *bool
	DailyReport              *bool
}

// INFRASTUCTURE

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

// UploadImagesReq — запрос на загрузку изображений продукта.
type UploadImagesReq struct {
	Name   string
	Images []ProductImage
}

// REPOSITORIES

type UpsertProductRes struct {
	Product   *domain.Product
	NoChanges bool
}

// MAPPERS
func NewUpsertProductRes(product *domain.Product, noChanges bool) *UpsertProductRes {
	return &UpsertProductRes{
		Product:   product,
		NoChanges: noChanges,
	}
}

func NewProductInfo(id int64, name string, category string, price int64, stock int64, tiers []domain.DiscountTier) ProductInfo {
	return ProductInfo{
		ID:                id,
		Name:              name,
		CategoryName:      category,
		Price:             price,
		Stock:             stock,
		QuantityDiscounts: tiers,
	}
}

func NewUploadImagesReq(name string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Name:   name,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
	}
}

func NewAddNewProductReq(name string, category string, price int64, stock int64, tiers []domain.DiscountTier, images []ProductImage) *AddNewProductReq {
	return &AddNewProductReq{
		Name:              name,
		CategoryName:      category,
		Price:             price,
		Stock:             stock,
		QuantityDiscounts: tiers,
		Images:            images,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewGetProductsRes(pr []ProductInfo, notFoundProducts []int64) *GetProductsRes {
	return &GetProductsRes{
		Products:         pr,
		NotFoundProducts: notFoundProducts,
	}
}

func NewGetProductsReq(ids []int64) *GetProductsReq {
	return &GetProductsReq{ids}
}

func NewSetDiscountsReq(productID int64, tiers []domain.DiscountTier) *SetDiscountsReq {
	return &SetDiscountsReq{ProductID: productID, Tiers: tiers}
}

func NewQuoteProductReq(productID int64, quantity int64) *QuoteProductReq {
	return &QuoteProductReq{ProductID: productID, Quantity: quantity}
}

func NewQuoteCartReq(items []QuoteItem) *QuoteCartReq {
	return &QuoteCartReq{Items: items}
}

func NewCartItemReq(owner string, productID int64, quantity int64) *CartItemReq {
	return &CartItemReq{Owner: owner, ProductID: productID, Quantity: quantity}
}
