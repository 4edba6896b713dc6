package backup_settings_put

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"parceltrack/internal/entities"
	"parceltrack/internal/service/backup"
	"parceltrack/pkg/logger"
)

type backupSettingsRequest struct {
	FrequencyHours *int  `json:"frequency_hours,omitempty"`
	Enabled        *bool `json:"enabled,omitempty"`
}

type backupSettingsResponse struct {
	APIKeyConfigured bool       `json:"api_key_configured"`
	FrequencyHours   int        `json:"frequency_hours"`
	Enabled          bool       `json:"enabled"`
	LastBackupAt     *time.Time `json:"last_backup_at,omitempty"`
}

type Handler struct {
	log       handlerLogger
	service   Service
	scheduler Scheduler
}

func New(log handlerLogger, service Service, scheduler Scheduler) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		service:   service,
		scheduler: scheduler,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var settingsDTO backupSettingsRequest
	err := json.NewDecoder(r.Body).Decode(&settingsDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	settingsModify := entities.BackupSettingsModify{
		FrequencyHours: settingsDTO.FrequencyHours,
		Enabled:        settingsDTO.Enabled,
	}

	settings, err := h.service.UpdateSettings(r.Context(), settingsModify)
	if err != nil {
		switch {
		case errors.Is(err, backup.ErrInvalidFrequency):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// таймер перевзводится сразу, не дожидаясь следующего тика; контекст
	// запроса отвязывается, иначе завершение запроса снимет таймер
	if settings.Enabled {
		interval := time.Duration(settings.FrequencyHours) * time.Hour
		if err := h.scheduler.Start(context.WithoutCancel(r.Context()), interval); err != nil {
			h.log.With(
				logger.NewField("error", err),
			).Error("rearm backup schedule")
		}
	} else {
		h.scheduler.Stop()
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
