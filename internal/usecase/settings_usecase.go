package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
)

// SettingsUseCase отдаёт и обновляет настройки магазина для админ-панели.
type SettingsUseCase struct {
	settingsRepo SettingsRepository
	outboxRepo   OutboxRepository
	txManager    TxManager
}

func NewSettingsUC(settingsRepo SettingsRepository, outboxRepo OutboxRepository, txManager TxManager) *SettingsUseCase {
	return &SettingsUseCase{
		settingsRepo: settingsRepo,
		outboxRepo:   outboxRepo,
		txManager:    txManager,
	}
}

// GetSettings возвращает настройки, создавая значения по умолчанию при первом чтении.
func (s *SettingsUseCase) GetSettings(ctx context.Context) (*domain.Settings, error) {
	const op = "SettingsUseCase.GetSettings"

	settings, err := s.settingsRepo.GetOrCreate(ctx, domain.NewDefaultSettings())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return settings, nil
}

// UpdateSettings применяет частичное обновление и пишет событие settings.updated.
func (s *SettingsUseCase) UpdateSettings(ctx context.Context, req *UpdateSettingsReq) (*domain.Settings, error) {
	const op = "SettingsUseCase.UpdateSettings"

	if req.StoreName != nil && strings.TrimSpace(*req.StoreName) == "" {
		return nil, e.Wrap(op, e.ErrStoreNameRequired)
	}

	var updated *domain.Settings
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.settingsRepo.GetOrCreate(ctx, domain.NewDefaultSettings())
		if err != nil {
			return err
		}

		applySettingsPatch(current, req)

		updated, err = s.settingsRepo.Update(ctx, current)
		if err != nil {
			return err
		}

		_, err = writeOutboxEvent(ctx, s.outboxRepo, SettingsUpdated, updated.ID, map[string]any{
			"store_name":                 updated.StoreName,
			"store_description":          updated.StoreDescription,
			"enable_email_notifications": updated.EnableEmailNotifications,
			"notifications": map[string]any{
				"new_order":    updated.Notifications.NewOrder,
				"low_stock":    updated.Notifications.LowStock,
				"daily_report": updated.Notifications.DailyReport,
			},
		})
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

func applySettingsPatch(s *domain.Settings, req *UpdateSettingsReq) {
	if req.StoreName != nil {
		s.StoreName = strings.TrimSpace(*req.StoreName)
	}
	if req.StoreDescription != nil {
		s.StoreDescription = *req.StoreDescription
	}
	if req.EnableEmailNotifications != nil {
		s.EnableEmailNotifications = *req.EnableEmailNotifications
	}
	if req.NewOrder != nil {
		s.Notifications.NewOrder = *req.NewOrder
	}
	if req.LowStock != nil {
		s.Notifications.LowStock = *req.LowStock
	}
	if req.DailyReport != nil {
		s.Notifications.DailyReport = *req.DailyReport
	}
}
