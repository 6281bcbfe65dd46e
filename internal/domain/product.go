package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product описывает продукт
type Product struct {
	ID                int64
	Name              string
	Price             int64 // Цена хранится в копейках
	CategoryID        int64
	Stock             int64
	QuantityDiscounts []DiscountTier
	Version           int64 // растёт при изменении продукта или его скидок
	CreatedAt         time.Time
	UpdatedAt         *time.Time
	IsArchived        bool
}

func NewProduct(name string, price int64, categoryID int64, stock int64) *Product {
	return &Product{
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
		Stock:      stock,
	}
}

// PriceFromCents переводит цену из копеек в десятичное значение.
func PriceFromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
