package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CouponKind string

const (
	CouponPercent CouponKind = "percent"
	CouponFixed   CouponKind = "fixed"
)

// Coupon — код скидки на весь заказ. Value: процент для percent, сумма в рублях для fixed.
type Coupon struct {
	Code        string
	Kind        CouponKind
	Value       decimal.Decimal
	MinSubtotal decimal.Decimal
	Active      bool
	ExpiresAt   *time.Time
	CreatedAt   time.Time
}

// NormalizeCouponCode: коды сравниваются без учёта регистра и пробелов по краям.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c *Coupon) Valid() bool {
	if c.Code == "" || len(c.Code) > 64 || c.MinSubtotal.IsNegative() || !c.Value.IsPositive() {
		return false
	}
	switch c.Kind {
	case CouponPercent:
		return c.Value.LessThanOrEqual(hundred)
	case CouponFixed:
		return true
	default:
		return false
	}
}

func (c *Coupon) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(*c.ExpiresAt)
}

// Discount возвращает скидку для подытога, округлённую до копеек и не больше самого подытога.
func (c *Coupon) Discount(subtotal decimal.Decimal) decimal.Decimal {
	if !subtotal.IsPositive() {
		return decimal.Zero
	}

	var d decimal.Decimal
	switch c.Kind {
	case CouponPercent:
		d = subtotal.Mul(c.Value).Div(hundred).Round(2)
	case CouponFixed:
		d = c.Value
	}
	return decimal.Min(d, subtotal)
}

// AfterDiscount: итог к оплате, не меньше нуля.
func AfterDiscount(subtotal, discount decimal.Decimal) decimal.Decimal {
	return decimal.Max(subtotal.Sub(discount), decimal.Zero)
}
