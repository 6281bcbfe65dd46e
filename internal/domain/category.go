package domain

import (
	"strings"
	"time"
)

// Category — категория товаров. Имя уникально, товары ссылаются на неё по ID.
type Category struct {
	ID         int64
	Name       string
	CreatedAt  time.Time
	IsArchived bool
}

// NewCategory нормализует имя: крайние пробелы убираются, внутренние схлопываются,
// чтобы "Tea " и "Tea" не стали разными категориями.
func NewCategory(name string) *Category {
	return &Category{
		Name: strings.Join(strings.Fields(name), " "),
	}
}
