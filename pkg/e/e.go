package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrExpectedJSON         = fmt.Errorf("expected application/json")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrTooManyImages        = fmt.Errorf("too many images")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrCategoryRequired     = fmt.Errorf("category is required")
	ErrPriceMustBePositive  = fmt.Errorf("price must be positive")
	ErrNoImages             = fmt.Errorf("no images provided")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrInvalidDiscountTier  = fmt.Errorf("invalid quantity discount tier")
	ErrTooManyDiscountTiers = fmt.Errorf("too many quantity discount tiers")
	ErrInvalidQuantity      = fmt.Errorf("invalid quantity")
	ErrInvalidProductID     = fmt.Errorf("invalid product id")
	ErrInvalidOwner         = fmt.Errorf("invalid cart owner")
	ErrNoProducts           = fmt.Errorf("no products requested")
	ErrEmptyQuote           = fmt.Errorf("quote has no items")
	ErrTooManyQuoteItems    = fmt.Errorf("too many quote items")
	ErrStoreNameRequired    = fmt.Errorf("store name is required")

	ErrAddressFieldsRequired = fmt.Errorf("full name, address, city and phone are required")
	ErrTooManyAddresses      = fmt.Errorf("too many addresses")
	ErrAddressRequired       = fmt.Errorf("shipping address is required")
	ErrInvalidCoupon         = fmt.Errorf("invalid coupon")
	ErrCouponInactive        = fmt.Errorf("coupon is not active")
	ErrCouponExpired         = fmt.Errorf("coupon has expired")
	ErrCouponMinSubtotal     = fmt.Errorf("order subtotal is below coupon minimum")
	ErrInvalidPaymentMethod  = fmt.Errorf("invalid payment method")
	ErrInsufficientStock     = fmt.Errorf("insufficient stock")
	ErrEmptyOrder            = fmt.Errorf("order has no items")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrAddressNotFound = fmt.Errorf("address not found")
	ErrCouponNotFound  = fmt.Errorf("coupon not found")
	ErrOrderNotFound   = fmt.Errorf("order not found")

	// 409 Conflict
	ErrConcurrentUpdate   = fmt.Errorf("concurrent update, try again")
	ErrInvalidOrderStatus = fmt.Errorf("order status transition is not allowed")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
