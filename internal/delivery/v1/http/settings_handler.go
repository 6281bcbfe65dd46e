package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type SettingsHandler struct {
	settingsUsecase usecase.SettingsUC
	logger          logger.Logger
}

func NewSettingsHandler(settingsUsecase usecase.SettingsUC, logger logger.Logger) *SettingsHandler {
	return &SettingsHandler{settingsUsecase: settingsUsecase, logger: logger}
}

// getSettings
//
//	@Summary	Настройки магазина
//	@Tags		settings
//	@Produce	json
//	@Success	200	{object}	SettingsResponse
//	@Router		/settings [get]
func (s *SettingsHandler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settingsUsecase.GetSettings(r.Context())
	if err != nil {
		s.logger.Errorf(err, "get settings")
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toSettingsResponse(settings))
}

// updateSettings
//
//	@Summary	Частичное обновление настроек
//	@Tags		settings
//	@Accept		json
//	@Produce	json
//	@Param		body	body		UpdateSettingsRequest	true	"Изменяемые поля"
//	@Success	200		{object}	SettingsResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/settings [put]
func (s *SettingsHandler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var body UpdateSettingsRequest
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	settings, err := s.settingsUsecase.UpdateSettings(r.Context(), body.toUseCase())
	if err != nil {
		s.logger.Warnf("update settings: %v", err)
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toSettingsResponse(settings))
}
