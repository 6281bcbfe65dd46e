package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/kv"
	"github.com/DRSN-tech/storefront-backend/internal/repository/memory"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	products   map[int64]usecase.ProductInfo
	registered *usecase.AddNewProductReq
	discounts  *usecase.SetDiscountsReq
}

func (s *stubCatalog) RegisterNewProduct(_ context.Context, req *usecase.AddNewProductReq) (*usecase.RegisterProductRes, error) {
	s.registered = req
	return &usecase.RegisterProductRes{ProductID: 42, EventID: "evt-1"}, nil
}

func (s *stubCatalog) SetQuantityDiscounts(_ context.Context, req *usecase.SetDiscountsReq) (*usecase.OutboxEvent, error) {
	if _, ok := s.products[req.ProductID]; !ok {
		return nil, e.Wrap("stub", e.ErrProductNotFound)
	}
	s.discounts = req
	return &usecase.OutboxEvent{EventID: "evt-2"}, nil
}

func (s *stubCatalog) GetProductsInfo(_ context.Context, req *usecase.GetProductsReq) (*usecase.GetProductsRes, error) {
	res := usecase.NewGetProductsRes(nil, nil)
	for _, id := range req.IDs {
		if p, ok := s.products[id]; ok {
			res.Products = append(res.Products, p)
			continue
		}
		res.NotFoundProducts = append(res.NotFoundProducts, id)
	}
	return res, nil
}

type stubSettings struct {
	last *usecase.UpdateSettingsReq
}

func (s *stubSettings) GetSettings(context.Context) (*domain.Settings, error) {
	return domain.NewDefaultSettings(), nil
}

func (s *stubSettings) UpdateSettings(_ context.Context, req *usecase.UpdateSettingsReq) (*domain.Settings, error) {
	s.last = req
	if req.StoreName != nil && strings.TrimSpace(*req.StoreName) == "" {
		return nil, e.ErrStoreNameRequired
	}
	st := domain.NewDefaultSettings()
	if req.StoreName != nil {
		st.StoreName = *req.StoreName
	}
	return st, nil
}

type stubCoupons struct {
	byCode map[string]domain.Coupon
}

func (s *stubCoupons) Upsert(_ context.Context, c *domain.Coupon) (*domain.Coupon, error) {
	saved := *c
	saved.CreatedAt = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	s.byCode[c.Code] = saved
	return &saved, nil
}

func (s *stubCoupons) GetByCode(_ context.Context, code string) (*domain.Coupon, error) {
	c, ok := s.byCode[code]
	if !ok {
		return nil, e.ErrCouponNotFound
	}
	return &c, nil
}

// stubOrders знает один заказ 7 покупателя u1 в статусе Pending.
type stubOrders struct {
	placed *usecase.PlaceOrderReq
	status domain.OrderStatus
}

func (s *stubOrders) order() *domain.Order {
	return &domain.Order{
		ID:            7,
		Owner:         "u1",
		Status:        s.status,
		PaymentMethod: domain.PaymentCOD,
		Items: []domain.OrderItem{{
			ProductID: 1, Name: "Tea", Quantity: 2,
			UnitPrice: decimal.NewFromInt(1000), TotalPrice: decimal.NewFromInt(2000), DiscountPercent: decimal.Zero,
		}},
		ShippingAddress: domain.ShippingAddress{FullName: "Ann", Street: "Main 1", City: "Kazan", Phone: "+7900"},
		SubTotal:        decimal.NewFromInt(2000),
		Discount:        decimal.Zero,
		Total:           decimal.NewFromInt(2000),
	}
}

func (s *stubOrders) PlaceOrder(_ context.Context, req *usecase.PlaceOrderReq) (*domain.Order, error) {
	if _, ok := domain.ParsePaymentMethod(req.PaymentMethod); !ok {
		return nil, e.ErrInvalidPaymentMethod
	}
	s.placed = req
	return s.order(), nil
}

func (s *stubOrders) ListOrders(_ context.Context, owner string) ([]*domain.Order, error) {
	if owner != "u1" {
		return []*domain.Order{}, nil
	}
	return []*domain.Order{s.order()}, nil
}

func (s *stubOrders) GetOrder(_ context.Context, owner string, id int64) (*domain.Order, error) {
	if owner != "u1" || id != 7 {
		return nil, e.ErrOrderNotFound
	}
	return s.order(), nil
}

func (s *stubOrders) CancelOrder(ctx context.Context, owner string, id int64) (*domain.Order, error) {
	if _, err := s.GetOrder(ctx, owner, id); err != nil {
		return nil, err
	}
	if !s.status.CanBecome(domain.OrderCancelled) {
		return nil, e.ErrInvalidOrderStatus
	}
	s.status = domain.OrderCancelled
	return s.order(), nil
}

func (s *stubOrders) UpdateOrderStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	next, ok := domain.ParseOrderStatus(status)
	if !ok {
		return nil, e.ErrInvalidOrderStatus
	}
	if _, err := s.GetOrder(ctx, "u1", id); err != nil {
		return nil, err
	}
	if !s.status.CanBecome(next) {
		return nil, e.ErrInvalidOrderStatus
	}
	s.status = next
	return s.order(), nil
}

type testServer struct {
	handler  http.Handler
	catalog  *stubCatalog
	settings *stubSettings
	orders   *stubOrders
}

func newTestServer(t *testing.T, checks map[string]HealthCheck) *testServer {
	t.Helper()

	catalog := &stubCatalog{products: map[int64]usecase.ProductInfo{
		1: usecase.NewProductInfo(1, "Tea", "Drinks", 100000, 0, []domain.DiscountTier{
			domain.NewDiscountTier(5, 10),
			domain.NewDiscountTier(10, 20),
		}),
	}}
	settings := &stubSettings{}
	orders := &stubOrders{status: domain.OrderPending}

	log := logger.NewNop()
	store := memory.NewKVStore(time.Hour, time.Minute)
	carts := kv.NewCartRepo(store, time.Hour, log)

	mux := chi.NewRouter()
	NewRouter(mux, log).Init(UseCases{
		Products:  catalog,
		Quotes:    usecase.NewQuoteUC(catalog),
		Carts:     usecase.NewCartUC(carts, catalog, log),
		Wishlists: usecase.NewWishlistUC(kv.NewWishlistRepo(store, time.Hour, log), catalog),
		Settings:  settings,
		Addresses: usecase.NewAddressUC(kv.NewAddressRepo(store, 0, log)),
		Coupons:   usecase.NewCouponUC(&stubCoupons{byCode: map[string]domain.Coupon{}}, carts, catalog),
		Orders:    orders,
	}, checks)

	return &testServer{handler: mux, catalog: catalog, settings: settings, orders: orders}
}

func (s *testServer) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	}
	return rec, decoded
}

func TestGetPrice(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, body := srv.do(t, http.MethodGet, "/api/v1/products/1/price?quantity=7", "")
	require.Equal(t, http.StatusOK, rec.Code)
	pricing := body["pricing"].(map[string]any)
	assert.Equal(t, "900", pricing["unitPrice"])
	assert.Equal(t, "6300", pricing["totalPrice"])
	assert.Equal(t, true, pricing["hasDiscount"])
	tiers := pricing["tiers"].([]any)
	require.Len(t, tiers, 2)
	assert.Equal(t, float64(5), tiers[0].(map[string]any)["minQty"])
	assert.Equal(t, float64(20), tiers[1].(map[string]any)["discountPercent"])
	product := body["product"].(map[string]any)
	assert.Equal(t, "Tea", product["name"])
	assert.Equal(t, "1000.00", product["price"])

	rec, body = srv.do(t, http.MethodGet, "/api/v1/products/1/price", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["quantity"])
	assert.Equal(t, "1000", body["pricing"].(map[string]any)["totalPrice"])
}

func TestGetPrice_Errors(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, body := srv.do(t, http.MethodGet, "/api/v1/products/2/price", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, e.ErrProductNotFound.Error(), body["message"])
	assert.Equal(t, float64(http.StatusNotFound), body["code"])

	rec, _ = srv.do(t, http.MethodGet, "/api/v1/products/abc/price", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

}

func TestGetPrice_DegenerateQuantity(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		query    string
		quantity float64
		total    string
	}{
		{"quantity=x", 0, "0"},
		{"quantity=-3", 0, "0"},
		{"quantity=NaN", 0, "0"},
		{"quantity=5.9", 5, "4500"},
		{"quantity=", 1, "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec, body := srv.do(t, http.MethodGet, "/api/v1/products/1/price?"+tt.query, "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.quantity, body["quantity"])
			assert.Equal(t, tt.total, body["pricing"].(map[string]any)["totalPrice"])
		})
	}
}

func TestGetProducts(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, body := srv.do(t, http.MethodGet, "/api/v1/products?ids=1,5,1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	products := body["products"].([]any)
	require.Len(t, products, 1)
	p := products[0].(map[string]any)
	assert.Equal(t, "1000.00", p["price"])
	assert.Equal(t, float64(100000), p["priceCents"])
	assert.Len(t, p["quantityDiscounts"], 2)
	assert.Equal(t, []any{float64(5)}, body["notFoundProducts"])

	rec, _ = srv.do(t, http.MethodGet, "/api/v1/products", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuotes(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, body := srv.do(t, http.MethodPost, "/api/v1/quotes",
		`{"items":[{"productId":1,"quantity":12},{"productId":99,"quantity":1}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "9600", body["subtotal"])
	assert.Equal(t, float64(12), body["itemCount"])
	assert.Equal(t, []any{float64(99)}, body["notFoundProducts"])

	rec, _ = srv.do(t, http.MethodPost, "/api/v1/quotes", `{"items":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = srv.do(t, http.MethodPost, "/api/v1/quotes", `{"lines":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetDiscounts(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, body := srv.do(t, http.MethodPut, "/api/v1/products/1/discounts", `{"tiers":[{"minQty":3,"discountPercent":5}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "evt-2", body["eventId"])
	require.Len(t, srv.catalog.discounts.Tiers, 1)
	assert.Equal(t, int64(3), *srv.catalog.discounts.Tiers[0].MinQty)

	rec, _ = srv.do(t, http.MethodPut, "/api/v1/products/7/discounts", `{"tiers":[]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartFlow(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, body := srv.do(t, http.MethodPost, "/api/v1/carts/u1/items", `{"productId":1,"quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3000", body["cartTotal"])

	rec, body = srv.do(t, http.MethodPut, "/api/v1/carts/u1/items/1", `{"quantity":10}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "8000", body["cartTotal"])
	assert.Equal(t, float64(10), body["cartCount"])

	rec, _ = srv.do(t, http.MethodPost, "/api/v1/carts/u1/items", `{"productId":1,"quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = srv.do(t, http.MethodDelete, "/api/v1/carts/u1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, body = srv.do(t, http.MethodGet, "/api/v1/carts/u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body["lines"])
	assert.Equal(t, "0", body["cartTotal"])
}

func TestWishlistToggle(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, body := srv.do(t, http.MethodPost, "/api/v1/wishlists/u1/items/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["inWishlist"])
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "1000.00", items[0].(map[string]any)["price"])

	rec, body = srv.do(t, http.MethodPost, "/api/v1/wishlists/u1/items/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["inWishlist"])

	rec, _ = srv.do(t, http.MethodPost, "/api/v1/wishlists/u1/items/3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSettings(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, body := srv.do(t, http.MethodGet, "/api/v1/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.DefaultStoreName, body["storeName"])

	rec, body = srv.do(t, http.MethodPut, "/api/v1/settings", `{"storeName":"Corner","notifications":{"dailyReport":true}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Corner", body["storeName"])
	require.NotNil(t, srv.settings.last.DailyReport)
	assert.True(t, *srv.settings.last.DailyReport)
	assert.Nil(t, srv.settings.last.NewOrder)

	rec, _ = srv.do(t, http.MethodPut, "/api/v1/settings", `{"storeName":" "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterProduct(t *testing.T) {
	srv := newTestServer(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Green Tea"))
	require.NoError(t, mw.WriteField("category", "Drinks"))
	require.NoError(t, mw.WriteField("price", "12.50"))
	require.NoError(t, mw.WriteField("stock", "3"))
	require.NoError(t, mw.WriteField("discounts", `[{"minQty":5,"discountPercent":10}]`))

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="images"; filename="front.png"`)
	h.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := srv.catalog.registered
	require.NotNil(t, got)
	assert.Equal(t, "Green Tea", got.Name)
	assert.Equal(t, int64(1250), got.Price)
	assert.Equal(t, int64(3), got.Stock)
	require.Len(t, got.QuantityDiscounts, 1)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "image/png", got.Images[0].MimeType)
}

func TestRegisterProduct_RequiresMultipart(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, body := srv.do(t, http.MethodPost, "/api/v1/products", `{"name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, e.ErrExpectedMultipart.Error(), body["message"])
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, map[string]HealthCheck{
		"postgres": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return errors.New("dial tcp: refused") },
	})

	rec, body := srv.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "ok", body["postgres"])
	assert.Equal(t, "dial tcp: refused", body["redis"])
}

func TestAddressBook(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, body := srv.do(t, http.MethodPost, "/api/v1/addresses/u1",
		`{"fullName":"Ann","address":"Main 1","city":"Kazan","phone":"+7900"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["isDefault"])
	first := body["id"].(string)
	require.NotEmpty(t, first)

	rec, body = srv.do(t, http.MethodPost, "/api/v1/addresses/u1",
		`{"fullName":"Ann","address":"Park 2","city":"Moscow","zipCode":"101000","phone":"+7900"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, false, body["isDefault"])
	second := body["id"].(string)

	rec, _ = srv.do(t, http.MethodPost, "/api/v1/addresses/u1", `{"fullName":"Ann","city":"Kazan"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = srv.do(t, http.MethodPut, "/api/v1/addresses/u1/"+second+"/default", "")
	require.Equal(t, http.StatusOK, rec.Code)
	addresses := body["addresses"].([]any)
	require.Len(t, addresses, 2)
	assert.Equal(t, false, addresses[0].(map[string]any)["isDefault"])
	assert.Equal(t, true, addresses[1].(map[string]any)["isDefault"])

	rec, body = srv.do(t, http.MethodPut, "/api/v1/addresses/u1/"+first,
		`{"fullName":"Ann B","address":"Main 1","city":"Kazan","phone":"+7900"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ann B", body["fullName"])

	rec, body = srv.do(t, http.MethodDelete, "/api/v1/addresses/u1/"+second, "")
	require.Equal(t, http.StatusOK, rec.Code)
	addresses = body["addresses"].([]any)
	require.Len(t, addresses, 1)
	assert.Equal(t, true, addresses[0].(map[string]any)["isDefault"])

	rec, _ = srv.do(t, http.MethodDelete, "/api/v1/addresses/u1/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCoupons(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, body := srv.do(t, http.MethodPost, "/api/v1/coupons", `{"code":" spring10 ","kind":"percent","value":10}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "SPRING10", body["code"])
	assert.Equal(t, true, body["active"])

	rec, _ = srv.do(t, http.MethodPost, "/api/v1/coupons", `{"code":"BIG","kind":"percent","value":150}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = srv.do(t, http.MethodPost, "/api/v1/coupons", `{"code":"HUGE","kind":"fixed","value":"5000"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = srv.do(t, http.MethodPost, "/api/v1/coupons/apply", `{"owner":"u1","code":"SPRING10"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "empty cart")

	rec, _ = srv.do(t, http.MethodPost, "/api/v1/carts/u1/items", `{"productId":1,"quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = srv.do(t, http.MethodPost, "/api/v1/coupons/apply", `{"owner":"u1","code":"spring10"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3000", body["cartTotal"])
	assert.Equal(t, "300", body["discount"])
	assert.Equal(t, "2700", body["finalTotal"])

	rec, body = srv.do(t, http.MethodPost, "/api/v1/coupons/apply", `{"owner":"u1","code":"HUGE"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3000", body["discount"])
	assert.Equal(t, "0", body["finalTotal"])

	rec, _ = srv.do(t, http.MethodPost, "/api/v1/coupons/apply", `{"owner":"u1","code":"NOPE"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrders(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, body := srv.do(t, http.MethodPost, "/api/v1/orders/u1", `{
		"items":[{"productId":1,"quantity":2}],
		"shippingAddress":{"fullName":"Ann","address":"Main 1","city":"Kazan","state":"TA","zipCode":"420000","phone":"+7900"},
		"paymentMethod":"COD",
		"couponCode":"SPRING10"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, "Pending", body["status"])
	assert.Equal(t, "2000", body["total"])
	require.NotNil(t, srv.orders.placed.Address)
	assert.Equal(t, "Main 1", srv.orders.placed.Address.Street)
	assert.Equal(t, "420000", srv.orders.placed.Address.ZipCode)
	assert.Equal(t, "SPRING10", srv.orders.placed.CouponCode)
	assert.Equal(t, []usecase.QuoteItem{{ProductID: 1, Quantity: 2}}, srv.orders.placed.Items)

	rec, _ = srv.do(t, http.MethodPost, "/api/v1/orders/u1", `{"paymentMethod":"barter"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = srv.do(t, http.MethodGet, "/api/v1/orders/u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["orders"], 1)

	rec, _ = srv.do(t, http.MethodGet, "/api/v1/orders/u2/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec, _ = srv.do(t, http.MethodGet, "/api/v1/orders/u1/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, body = srv.do(t, http.MethodPut, "/api/v1/admin/orders/7/status", `{"status":"Processing"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Processing", body["status"])

	rec, _ = srv.do(t, http.MethodPut, "/api/v1/admin/orders/7/status", `{"status":"Delivered"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, body = srv.do(t, http.MethodPost, "/api/v1/orders/u1/7/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cancelled", body["status"])

	rec, _ = srv.do(t, http.MethodPost, "/api/v1/orders/u1/7/cancel", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}
