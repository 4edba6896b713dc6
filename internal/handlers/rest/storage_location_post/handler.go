package storage_location_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parceltrack/internal/service/location"
	"parceltrack/pkg/logger"
)

type storageLocationCreateRequest struct {
	LocationID int64  `json:"location_id"`
	Name       string `json:"name"`
}

type storageLocationCreateResponse struct {
	ID int64 `json:"id"`
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
	var storageLocationDTO storageLocationCreateRequest
	err := json.NewDecoder(r.Body).Decode(&storageLocationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := h.service.CreateStorageLocation(r.Context(), storageLocationDTO.LocationID, storageLocationDTO.Name)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrMissingRequiredFields),
			errors.Is(err, location.ErrInvalidName):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, location.ErrLocationNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, location.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := storageLocationCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
