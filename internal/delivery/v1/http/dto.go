package http

import (
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// Денежные суммы отдаются строками ("1234.5"), цены в копейках числами.

type TierDTO struct {
	MinQty          *int64   `json:"minQty"`
	DiscountPercent *float64 `json:"discountPercent"`
}

type SetDiscountsRequest struct {
	Tiers []TierDTO `json:"tiers"`
}

type RegisterProductResponse struct {
	ProductID int64  `json:"productId"`
	EventID   string `json:"eventId,omitempty"`
	Changed   bool   `json:"changed"`
}

type ProductDTO struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Price             string    `json:"price"`
	PriceCents        int64     `json:"priceCents"`
	Stock             int64     `json:"stock"`
	QuantityDiscounts []TierDTO `json:"quantityDiscounts"`
}

type ProductsResponse struct {
	Products         []ProductDTO `json:"products"`
	NotFoundProducts []int64      `json:"notFoundProducts"`
}

type PricingDTO struct {
	OriginalPrice   decimal.Decimal `json:"originalPrice"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	HasDiscount     bool            `json:"hasDiscount"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	Tiers           []TierDTO       `json:"tiers"`
}

type PriceResponse struct {
	ProductID int64      `json:"productId"`
	Quantity  int64      `json:"quantity"`
	Product   ProductDTO `json:"product"`
	Pricing   PricingDTO `json:"pricing"`
}

type QuoteItemDTO struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type QuoteRequest struct {
	Items []QuoteItemDTO `json:"items"`
}

type LineDTO struct {
	Product  ProductDTO `json:"product"`
	Quantity int64      `json:"quantity"`
	Pricing  PricingDTO `json:"pricing"`
}

type QuoteResponse struct {
	Lines            []LineDTO       `json:"lines"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	ItemCount        int64           `json:"itemCount"`
	NotFoundProducts []int64         `json:"notFoundProducts"`
}

type CartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type QuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type CartResponse struct {
	Owner            string          `json:"owner"`
	Lines            []LineDTO       `json:"lines"`
	CartTotal        decimal.Decimal `json:"cartTotal"`
	CartCount        int64           `json:"cartCount"`
	NotFoundProducts []int64         `json:"notFoundProducts"`
}

type WishlistItemDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

type WishlistResponse struct {
	Owner string            `json:"owner"`
	Items []WishlistItemDTO `json:"items"`
}

type ToggleWishlistResponse struct {
	WishlistResponse
	InWishlist bool `json:"inWishlist"`
}

type NotificationsDTO struct {
	NewOrder    bool `json:"newOrder"`
	LowStock    bool `json:"lowStock"`
	DailyReport bool `json:"dailyReport"`
}

type SettingsResponse struct {
	StoreName                string           `json:"storeName"`
	StoreDescription         string           `json:"storeDescription"`
	EnableEmailNotifications bool             `json:"enableEmailNotifications"`
	Notifications            NotificationsDTO `json:"notifications"`
	CreatedAt                time.Time        `json:"createdAt"`
	UpdatedAt                time.Time        `json:"updatedAt"`
}

type NotificationsPatch struct {
	NewOrder    *bool `json:"newOrder"`
	LowStock    *bool `json:"lowStock"`
	DailyReport *bool `json:"dailyReport"`
}

// UpdateSettingsRequest: отсутствующие поля не меняются.
type UpdateSettingsRequest struct {
	StoreName                *string             `json:"storeName"`
	StoreDescription         *string             `json:"storeDescription"`
	EnableEmailNotifications *bool               `json:"enableEmailNotifications"`
	Notifications            *NotificationsPatch `json:"notifications"`
}

type AddressDTO struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Phone    string `json:"phone"`
}

type AddressRequest struct {
	AddressDTO
	IsDefault bool `json:"isDefault"`
}

type SavedAddressDTO struct {
	ID string `json:"id"`
	AddressDTO
	IsDefault bool `json:"isDefault"`
}

type AddressesResponse struct {
	Owner     string            `json:"owner"`
	Addresses []SavedAddressDTO `json:"addresses"`
}

// CreateCouponRequest: value в процентах для percent, в рублях для fixed. Без active купон активен.
type CreateCouponRequest struct {
	Code        string          `json:"code"`
	Kind        string          `json:"kind"`
	Value       decimal.Decimal `json:"value"`
	MinSubtotal decimal.Decimal `json:"minSubtotal"`
	Active      *bool           `json:"active"`
	ExpiresAt   *time.Time      `json:"expiresAt"`
}

type CouponDTO struct {
	Code        string          `json:"code"`
	Kind        string          `json:"kind"`
	Value       decimal.Decimal `json:"value"`
	MinSubtotal decimal.Decimal `json:"minSubtotal"`
	Active      bool            `json:"active"`
	ExpiresAt   *time.Time      `json:"expiresAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type ApplyCouponRequest struct {
	Owner string `json:"owner"`
	Code  string `json:"code"`
}

type ApplyCouponResponse struct {
	Code       string          `json:"code"`
	CartTotal  decimal.Decimal `json:"cartTotal"`
	Discount   decimal.Decimal `json:"discount"`
	FinalTotal decimal.Decimal `json:"finalTotal"`
}

// PlaceOrderRequest: без items заказ собирается из корзины, без shippingAddress
// берётся addressId или адрес по умолчанию.
type PlaceOrderRequest struct {
	Items           []QuoteItemDTO `json:"items"`
	AddressID       string         `json:"addressId"`
	ShippingAddress *AddressDTO    `json:"shippingAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
	CouponCode      string         `json:"couponCode"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderItemDTO struct {
	ProductID       int64           `json:"productId"`
	Name            string          `json:"name"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
}

type OrderDTO struct {
	ID              int64           `json:"id"`
	Owner           string          `json:"owner"`
	Status          string          `json:"status"`
	Items           []OrderItemDTO  `json:"items"`
	ShippingAddress AddressDTO      `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	CouponCode      string          `json:"couponCode,omitempty"`
	SubTotal        decimal.Decimal `json:"subTotal"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type OrdersResponse struct {
	Owner  string     `json:"owner"`
	Orders []OrderDTO `json:"orders"`
}

// MAPPERS

func toDomainTiers(tiers []TierDTO) []domain.DiscountTier {
	res := make([]domain.DiscountTier, 0, len(tiers))
	for _, t := range tiers {
		res = append(res, domain.DiscountTier{MinQty: t.MinQty, DiscountPercent: t.DiscountPercent})
	}
	return res
}

func toTierDTOs(tiers []domain.DiscountTier) []TierDTO {
	res := make([]TierDTO, 0, len(tiers))
	for _, t := range tiers {
		res = append(res, TierDTO{MinQty: t.MinQty, DiscountPercent: t.DiscountPercent})
	}
	return res
}

func toProductDTO(p *usecase.ProductInfo) ProductDTO {
	return ProductDTO{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.CategoryName,
		Price:             p.BasePrice().StringFixed(2),
		PriceCents:        p.Price,
		Stock:             p.Stock,
		QuantityDiscounts: toTierDTOs(p.QuantityDiscounts),
	}
}

func toPricingDTO(p domain.PricingResult) PricingDTO {
	return PricingDTO{
		OriginalPrice:   p.OriginalPrice,
		UnitPrice:       p.UnitPrice,
		TotalPrice:      p.TotalPrice,
		HasDiscount:     p.HasDiscount,
		DiscountPercent: p.DiscountPercent,
		Tiers:           toTierDTOs(p.Tiers),
	}
}

func toLineDTOs(lines []usecase.QuoteLine) []LineDTO {
	res := make([]LineDTO, 0, len(lines))
	for i := range lines {
		res = append(res, LineDTO{
			Product:  toProductDTO(&lines[i].Product),
			Quantity: lines[i].Quantity,
			Pricing:  toPricingDTO(lines[i].Pricing),
		})
	}
	return res
}

func toCartResponse(v *usecase.CartView) CartResponse {
	return CartResponse{
		Owner:            v.Owner,
		Lines:            toLineDTOs(v.Lines),
		CartTotal:        v.Total,
		CartCount:        v.Count,
		NotFoundProducts: nonNil(v.NotFoundProducts),
	}
}

func toWishlistResponse(v *usecase.WishlistView) WishlistResponse {
	items := make([]WishlistItemDTO, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, WishlistItemDTO{
			ID:       it.ProductID,
			Name:     it.Name,
			Price:    domain.PriceFromCents(it.Price).StringFixed(2),
			Category: it.CategoryName,
		})
	}
	return WishlistResponse{Owner: v.Owner, Items: items}
}

func toSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		StoreName:                s.StoreName,
		StoreDescription:         s.StoreDescription,
		EnableEmailNotifications: s.EnableEmailNotifications,
		Notifications: NotificationsDTO{
			NewOrder:    s.Notifications.NewOrder,
			LowStock:    s.Notifications.LowStock,
			DailyReport: s.Notifications.DailyReport,
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (r *UpdateSettingsRequest) toUseCase() *usecase.UpdateSettingsReq {
	req := &usecase.UpdateSettingsReq{
		StoreName:                r.StoreName,
		StoreDescription:         r.StoreDescription,
		EnableEmailNotifications: r.EnableEmailNotifications,
	}
	if r.Notifications != nil {
		req.NewOrder = r.Notifications.NewOrder
		req.LowStock = r.Notifications.LowStock
		req.DailyReport = r.Notifications.DailyReport
	}
	return req
}

func (a AddressDTO) toDomain() domain.ShippingAddress {
	return domain.ShippingAddress{
		FullName: a.FullName,
		Street:   a.Address,
		City:     a.City,
		State:    a.State,
		ZipCode:  a.ZipCode,
		Phone:    a.Phone,
	}
}

func toAddressDTO(a domain.ShippingAddress) AddressDTO {
	return AddressDTO{
		FullName: a.FullName,
		Address:  a.Street,
		City:     a.City,
		State:    a.State,
		ZipCode:  a.ZipCode,
		Phone:    a.Phone,
	}
}

func toSavedAddressDTO(a *domain.Address) SavedAddressDTO {
	return SavedAddressDTO{ID: a.ID, AddressDTO: toAddressDTO(a.ShippingAddress), IsDefault: a.IsDefault}
}

func toAddressesResponse(owner string, addresses []domain.Address) AddressesResponse {
	res := AddressesResponse{Owner: owner, Addresses: make([]SavedAddressDTO, 0, len(addresses))}
	for i := range addresses {
		res.Addresses = append(res.Addresses, toSavedAddressDTO(&addresses[i]))
	}
	return res
}

func (r *CreateCouponRequest) toUseCase() *usecase.CreateCouponReq {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &usecase.CreateCouponReq{
		Code:        r.Code,
		Kind:        r.Kind,
		Value:       r.Value,
		MinSubtotal: r.MinSubtotal,
		Active:      active,
		ExpiresAt:   r.ExpiresAt,
	}
}

func toCouponDTO(c *domain.Coupon) CouponDTO {
	return CouponDTO{
		Code:        c.Code,
		Kind:        string(c.Kind),
		Value:       c.Value,
		MinSubtotal: c.MinSubtotal,
		Active:      c.Active,
		ExpiresAt:   c.ExpiresAt,
		CreatedAt:   c.CreatedAt,
	}
}

func (r *PlaceOrderRequest) toUseCase(owner string) *usecase.PlaceOrderReq {
	req := &usecase.PlaceOrderReq{
		Owner:         owner,
		AddressID:     r.AddressID,
		PaymentMethod: r.PaymentMethod,
		CouponCode:    r.CouponCode,
	}
	for _, it := range r.Items {
		req.Items = append(req.Items, usecase.QuoteItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	if r.ShippingAddress != nil {
		addr := r.ShippingAddress.toDomain()
		req.Address = &addr
	}
	return req
}

func toOrderDTO(o *domain.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemDTO{
			ProductID:       it.ProductID,
			Name:            it.Name,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			TotalPrice:      it.TotalPrice,
			DiscountPercent: it.DiscountPercent,
		})
	}

	return OrderDTO{
		ID:              o.ID,
		Owner:           o.Owner,
		Status:          string(o.Status),
		Items:           items,
		ShippingAddress: toAddressDTO(o.ShippingAddress),
		PaymentMethod:   string(o.PaymentMethod),
		CouponCode:      o.CouponCode,
		SubTotal:        o.SubTotal,
		Discount:        o.Discount,
		Total:           o.Total,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
