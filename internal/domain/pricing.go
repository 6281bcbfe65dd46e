package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

const maxDiscountPercent = 100

var hundred = decimal.NewFromInt(100)

// DiscountTier — правило оптовой скидки: начиная с MinQty штук действует DiscountPercent.
// Поля указатели: правило без любого из них считается некорректным и игнорируется.
type DiscountTier struct {
	MinQty          *int64
	DiscountPercent *float64
}

func NewDiscountTier(minQty int64, discountPercent float64) DiscountTier {
	return DiscountTier{
		MinQty:          &minQty,
		DiscountPercent: &discountPercent,
	}
}

// Priced — то, что калькулятору нужно знать о продукте.
type Priced interface {
	BasePrice() decimal.Decimal
	Tiers() []DiscountTier
}

// PricedProduct — продукт, пришедший извне (например, из корзины) с ценой в рублях.
type PricedProduct struct {
	Price             decimal.Decimal
	QuantityDiscounts []DiscountTier
}

func (p *PricedProduct) BasePrice() decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return p.Price
}

func (p *PricedProduct) Tiers() []DiscountTier {
	if p == nil {
		return nil
	}
	return p.QuantityDiscounts
}

func (p *Product) BasePrice() decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return PriceFromCents(p.Price)
}

func (p *Product) Tiers() []DiscountTier {
	if p == nil {
		return nil
	}
	return p.QuantityDiscounts
}

// PricingResult — рассчитанная цена для количества. Не хранится, считается по запросу.
type PricingResult struct {
	OriginalPrice   decimal.Decimal
	UnitPrice       decimal.Decimal
	TotalPrice      decimal.Decimal
	HasDiscount     bool
	DiscountPercent decimal.Decimal
	Tiers           []DiscountTier
}

// QuantityDiscount считает цену за единицу и итог для quantity штук.
//
// Из корректных правил с MinQty <= quantity выбирается правило с наибольшим MinQty,
// при равных MinQty с наибольшим процентом. Процент ограничивается [0, 100].
// Отрицательное количество и отрицательная цена приводятся к нулю.
// Функция не возвращает ошибок и не имеет побочных эффектов.
func QuantityDiscount(p Priced, quantity int64) PricingResult {
	var (
		original decimal.Decimal
		tiers    []DiscountTier
	)
	if p != nil {
		original = p.BasePrice()
		tiers = p.Tiers()
	}
	if original.IsNegative() {
		original = decimal.Zero
	}

	qty := max(quantity, 0)
	qtyDec := decimal.NewFromInt(qty)

	tier, ok := bestTier(tiers, qty)
	if !ok {
		return PricingResult{
			OriginalPrice:   original,
			UnitPrice:       original,
			TotalPrice:      original.Mul(qtyDec),
			HasDiscount:     false,
			DiscountPercent: decimal.Zero,
			Tiers:           tiers,
		}
	}

	percent := decimal.NewFromFloat(clampPercent(*tier.DiscountPercent))
	unitPrice := original.Mul(decimal.NewFromInt(1).Sub(percent.Div(hundred)))

	return PricingResult{
		OriginalPrice:   original,
		UnitPrice:       unitPrice,
		TotalPrice:      unitPrice.Mul(qtyDec),
		HasDiscount:     true,
		DiscountPercent: percent,
		Tiers:           tiers,
	}
}

// bestTier возвращает применимое правило с наибольшим MinQty.
func bestTier(tiers []DiscountTier, qty int64) (DiscountTier, bool) {
	var (
		best  DiscountTier
		found bool
	)

	for _, t := range tiers {
		if !t.wellFormed() || qty < *t.MinQty {
			continue
		}

		if !found ||
			*t.MinQty > *best.MinQty ||
			(*t.MinQty == *best.MinQty && *t.DiscountPercent > *best.DiscountPercent) {
			best = t
			found = true
		}
	}

	return best, found
}

// wellFormed: оба поля заданы, MinQty положительный, процент не NaN.
func (t DiscountTier) wellFormed() bool {
	if t.MinQty == nil || t.DiscountPercent == nil {
		return false
	}
	return *t.MinQty >= 1 && !math.IsNaN(*t.DiscountPercent)
}

func clampPercent(p float64) float64 {
	return math.Min(maxDiscountPercent, math.Max(0, p))
}
