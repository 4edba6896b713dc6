package backup_run_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"parceltrack/internal/service/location"
	"parceltrack/pkg/logger"
)

type backupRunResponse struct {
	LocationID   int64  `json:"location_id"`
	LocationName string `json:"location_name"`
	BinID        string `json:"bin_id,omitempty"`
	Skipped      bool   `json:"skipped"`
	Error        string `json:"error,omitempty"`
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.RunForLocation(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrLocationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := backupRunResponse{
		LocationID:   result.LocationID,
		LocationName: result.LocationName,
		BinID:        result.BinID,
		Skipped:      result.Skipped,
		Error:        result.Error,
	}

	status := http.StatusOK
	if result.Skipped {
		status = http.StatusConflict
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
