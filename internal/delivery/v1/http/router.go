package http

import (
	"context"
	"net/http"
	"time"

	_ "github.com/DRSN-tech/storefront-backend/docs" // регистрация swagger-спеки
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck проверяет одну зависимость (postgres, redis, ...).
type HealthCheck func(ctx context.Context) error

// UseCases: всё, что нужно роутеру от слоя бизнес-логики.
type UseCases struct {
	Products  usecase.ProductUC
	Quotes    usecase.QuoteUC
	Carts     usecase.CartUC
	Wishlists usecase.WishlistUC
	Settings  usecase.SettingsUC
	Addresses usecase.AddressUC
	Coupons   usecase.CouponUC
	Orders    usecase.OrderUC
}

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(uc UseCases, checks map[string]HealthCheck) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(r.requestLogger)
	r.router.Use(middleware.Recoverer)

	r.router.Get("/healthz", healthHandler(checks))
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerProductRoutes(v1, NewProductHandler(uc.Products, r.logger), NewQuoteHandler(uc.Quotes, r.logger))
		registerCartRoutes(v1, NewCartHandler(uc.Carts, uc.Wishlists, r.logger))
		registerSettingsRoutes(v1, NewSettingsHandler(uc.Settings, r.logger))
		registerCheckoutRoutes(v1,
			NewAddressHandler(uc.Addresses, r.logger),
			NewCouponHandler(uc.Coupons, r.logger),
			NewOrderHandler(uc.Orders, r.logger),
		)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler, qHandler *QuoteHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", prHandler.registerNewProduct)
		pr.Get("/", prHandler.getProducts)
		pr.Put("/{id}/discounts", prHandler.setDiscounts)
		pr.Get("/{id}/price", qHandler.getPrice)
	})
	router.Post("/quotes", qHandler.quoteCart)
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/carts/{owner}", func(c chi.Router) {
		c.Get("/", h.getCart)
		c.Delete("/", h.clearCart)
		c.Post("/items", h.addItem)
		c.Put("/items/{productId}", h.updateItem)
		c.Delete("/items/{productId}", h.removeItem)
	})
	router.Route("/wishlists/{owner}", func(wl chi.Router) {
		wl.Get("/", h.getWishlist)
		wl.Post("/items/{productId}", h.toggleWishlist)
	})
}

func registerSettingsRoutes(router chi.Router, h *SettingsHandler) {
	router.Get("/settings", h.getSettings)
	router.Put("/settings", h.updateSettings)
}

func registerCheckoutRoutes(router chi.Router, ah *AddressHandler, ch *CouponHandler, oh *OrderHandler) {
	router.Route("/addresses/{owner}", func(a chi.Router) {
		a.Get("/", ah.listAddresses)
		a.Post("/", ah.addAddress)
		a.Put("/{id}", ah.updateAddress)
		a.Put("/{id}/default", ah.setDefaultAddress)
		a.Delete("/{id}", ah.deleteAddress)
	})
	router.Post("/coupons", ch.createCoupon)
	router.Post("/coupons/apply", ch.applyCoupon)
	router.Route("/orders/{owner}", func(o chi.Router) {
		o.Post("/", oh.placeOrder)
		o.Get("/", oh.listOrders)
		o.Get("/{orderId}", oh.getOrder)
		o.Post("/{orderId}/cancel", oh.cancelOrder)
	})
	router.Put("/admin/orders/{orderId}/status", oh.updateOrderStatus)
}

// requestLogger пишет одну строку на запрос.
func (r *Router) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, req)

		r.logger.Debugf("%s %s -> %d (%s) req_id=%s",
			req.Method, req.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(req.Context()))
	})
}

// healthHandler: 200, если все проверки прошли, иначе 503 со списком упавших.
func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		status := http.StatusOK
		res := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status = http.StatusServiceUnavailable
				res[name] = err.Error()
				continue
			}
			res[name] = "ok"
		}

		WriteSuccess(w, status, res)
	}
}
