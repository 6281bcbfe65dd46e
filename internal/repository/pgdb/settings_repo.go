package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// в таблице хранится одна строка настроек
const settingsRowID = 1

const settingsColumns = `id, store_name, store_description, enable_email_notifications,
	notify_new_order, notify_low_stock, notify_daily_report, created_at, updated_at`

type SettingsRepo struct {
	db   DB
	conv converter.SettingsConverter
}

func NewSettingsRepo(db DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// GetOrCreate возвращает настройки; при первом обращении записывает defaults.
// Внутри транзакции строка блокируется до коммита.
func (s *SettingsRepo) GetOrCreate(ctx context.Context, defaults *domain.Settings) (*domain.Settings, error) {
	db := conn(ctx, s.db)
	m := s.conv.ToModel(defaults)

	_, err := db.Exec(ctx, `
		INSERT INTO store_settings (id, store_name, store_description, enable_email_notifications,
			notify_new_order, notify_low_stock, notify_daily_report)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`, settingsRowID, m.StoreName, m.StoreDescription, m.EnableEmailNotifications,
		m.NotifyNewOrder, m.NotifyLowStock, m.NotifyDailyReport)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	row := db.QueryRow(ctx, `SELECT `+settingsColumns+` FROM store_settings WHERE id = $1 FOR UPDATE`, settingsRowID)
	return s.scan(row)
}

func (s *SettingsRepo) Update(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	m := s.conv.ToModel(settings)

	row := conn(ctx, s.db).QueryRow(ctx, `
		UPDATE store_settings SET
			store_name = $2,
			store_description = $3,
			enable_email_notifications = $4,
			notify_new_order = $5,
			notify_low_stock = $6,
			notify_daily_report = $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+settingsColumns,
		settingsRowID, m.StoreName, m.StoreDescription, m.EnableEmailNotifications,
		m.NotifyNewOrder, m.NotifyLowStock, m.NotifyDailyReport)

	return s.scan(row)
}

func (s *SettingsRepo) scan(row pgx.Row) (*domain.Settings, error) {
	var m converter.SettingsModel
	if err := row.Scan(
		&m.ID, &m.StoreName, &m.StoreDescription, &m.EnableEmailNotifications,
		&m.NotifyNewOrder, &m.NotifyLowStock, &m.NotifyDailyReport, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&m), nil
}
