package domain

import "time"

const (
	DefaultStoreName        = "AZHAAN TRADER (03216031619)"
	DefaultStoreDescription = "Your trusted e-commerce platform"
)

// Settings описывает настройки магазина. Запись одна на весь магазин.
type Settings struct {
	ID                       int64
	StoreName                string
	StoreDescription         string
	EnableEmailNotifications bool
	Notifications            NotificationSettings
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// NotificationSettings — какие уведомления получает администратор.
type NotificationSettings struct {
	NewOrder    bool
	LowStock    bool
	DailyReport bool
}

func NewDefaultSettings() *Settings {
	return &Settings{
		StoreName:                DefaultStoreName,
		StoreDescription:         DefaultStoreDescription,
		EnableEmailNotifications: true,
		Notifications: NotificationSettings{
			NewOrder:    true,
			LowStock:    true,
			DailyReport: false,
		},
	}
}
