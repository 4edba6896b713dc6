package archive_sweep_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parceltrack/internal/service/parcel"
	"parceltrack/pkg/logger"
)

type archiveSweepRequest struct {
	MonthsOld int `json:"months_old"`
}

type archiveSweepResponse struct {
	Archived int64 `json:"archived"`
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
	var sweepDTO archiveSweepRequest
	err := json.NewDecoder(r.Body).Decode(&sweepDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	archived, err := h.service.ArchiveSweep(r.Context(), sweepDTO.MonthsOld)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidMonths):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := archiveSweepResponse{
		Archived: archived,
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
