package converter

type ProductInfoRedisModel struct {
	ID                int64               `json:"id"`
	Name              string              `json:"name"`
	CategoryName      string              `json:"category_name"`
	Price             int64               `json:"price"`
	Stock             int64               `json:"stock"`
	Version           int64               `json:"version"`
	QuantityDiscounts []DiscountTierModel `json:"quantity_discounts,omitempty"`
}

type DiscountTierModel struct {
	MinQty          int64   `json:"min_qty"`
	DiscountPercent float64 `json:"discount_percent"`
}
