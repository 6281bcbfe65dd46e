package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID         int64      `db:"id"`
	Name       string     `db:"name"`
	Price      int64      `db:"price"`
	CategoryID int64      `db:"category_id"`
	Stock      int64      `db:"stock"`
	Version    int64      `db:"version"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
	IsArchived bool       `db:"is_archived"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID         int64      `db:"id"`
	Name       string     `db:"name"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
	IsArchived bool       `db:"is_archived"`
}

// DiscountTierModel представляет запись таблицы quantity_discounts.
type DiscountTierModel struct {
	ProductID       int64   `db:"product_id"`
	MinQty          int64   `db:"min_qty"`
	DiscountPercent float64 `db:"discount_percent"`
}

// SettingsModel представляет единственную запись таблицы store_settings.
type SettingsModel struct {
	ID                       int64     `db:"id"`
	StoreName                string    `db:"store_name"`
	StoreDescription         string    `db:"store_description"`
	EnableEmailNotifications bool      `db:"enable_email_notifications"`
	NotifyNewOrder           bool      `db:"notify_new_order"`
	NotifyLowStock           bool      `db:"notify_low_stock"`
	NotifyDailyReport        bool      `db:"notify_daily_report"`
	CreatedAt                time.Time `db:"created_at"`
	UpdatedAt                time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	AggregateID int64      `db:"aggregate_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	Attempts    int        `db:"attempts"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}

// CouponModel представляет запись таблицы coupons.
type CouponModel struct {
	Code        string          `db:"code"`
	Kind        string          `db:"kind"`
	Value       decimal.Decimal `db:"value"`
	MinSubtotal decimal.Decimal `db:"min_subtotal"`
	Active      bool            `db:"active"`
	ExpiresAt   *time.Time      `db:"expires_at"`
	CreatedAt   time.Time       `db:"created_at"`
}

// OrderModel представляет запись таблицы orders; адрес доставки хранится в колонках ship_*.
type OrderModel struct {
	ID            int64           `db:"id"`
	Owner         string          `db:"owner"`
	Status        string          `db:"status"`
	PaymentMethod string          `db:"payment_method"`
	CouponCode    string          `db:"coupon_code"`
	SubTotal      decimal.Decimal `db:"sub_total"`
	Discount      decimal.Decimal `db:"discount"`
	Total         decimal.Decimal `db:"total"`
	ShipFullName  string          `db:"ship_full_name"`
	ShipAddress   string          `db:"ship_address"`
	ShipCity      string          `db:"ship_city"`
	ShipState     string          `db:"ship_state"`
	ShipZipCode   string          `db:"ship_zip_code"`
	ShipPhone     string          `db:"ship_phone"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// OrderItemModel представляет запись таблицы order_items.
type OrderItemModel struct {
	OrderID         int64           `db:"order_id"`
	Position        int             `db:"position"`
	ProductID       int64           `db:"product_id"`
	Name            string          `db:"name"`
	Quantity        int64           `db:"quantity"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
	TotalPrice      decimal.Decimal `db:"total_price"`
	DiscountPercent decimal.Decimal `db:"discount_percent"`
}
