package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"parceltrack/internal/entities"
	"parceltrack/internal/service/parcel"
	"parceltrack/pkg/logger"
)

type parcelCreateRequest struct {
	LocationID        int64           `json:"location_id"`
	TrackingNumber    string          `json:"tracking_number"`
	RecipientName     string          `json:"recipient_name"`
	Weight            decimal.Decimal `json:"weight"`
	StorageLocationID *int64          `json:"storage_location_id,omitempty"`
	Notes             string          `json:"notes,omitempty"`
}

type parcelCreateResponse struct {
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
	var parcelCreateDTO parcelCreateRequest
	err := json.NewDecoder(r.Body).Decode(&parcelCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelModifyEntity := entities.ParcelModify{
		LocationID:        &parcelCreateDTO.LocationID,
		TrackingNumber:    &parcelCreateDTO.TrackingNumber,
		RecipientName:     &parcelCreateDTO.RecipientName,
		Weight:            &parcelCreateDTO.Weight,
		StorageLocationID: parcelCreateDTO.StorageLocationID,
		Notes:             &parcelCreateDTO.Notes,
	}

	id, err := h.service.CreateParcel(r.Context(), parcelModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidTrackingNumber),
			errors.Is(err, parcel.ErrInvalidRecipientName),
			errors.Is(err, parcel.ErrInvalidWeight):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrStorageLocationMismatch):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := parcelCreateResponse{
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
