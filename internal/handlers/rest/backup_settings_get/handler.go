package backup_settings_get

import (
	"encoding/json"
	"net/http"
	"time"

	"parceltrack/pkg/logger"
)

type backupSettingsResponse struct {
	APIKeyConfigured bool       `json:"api_key_configured"`
	FrequencyHours   int        `json:"frequency_hours"`
	Enabled          bool       `json:"enabled"`
	LastBackupAt     *time.Time `json:"last_backup_at,omitempty"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Settings(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := backupSettingsResponse{
		APIKeyConfigured: settings.APIKeyConfigured,
		FrequencyHours:   settings.FrequencyHours,
		Enabled:          settings.Enabled,
		LastBackupAt:     settings.LastBackupAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
