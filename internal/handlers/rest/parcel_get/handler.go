package parcel_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"parceltrack/internal/service/parcel"
	"parceltrack/pkg/logger"
)

type parcelResponse struct {
	ID                int64           `json:"id"`
	LocationID        int64           `json:"location_id"`
	TrackingNumber    string          `json:"tracking_number"`
	RecipientName     string          `json:"recipient_name"`
	Weight            decimal.Decimal `json:"weight"`
	StorageLocationID *int64          `json:"storage_location_id,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	Status            string          `json:"status"`
	PickedUpBy        *string         `json:"picked_up_by,omitempty"`
	DeliveredAt       *time.Time      `json:"delivered_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
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

	parcelEntity, err := h.service.GetParcel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := parcelResponse{
		ID:                parcelEntity.ID,
		LocationID:        parcelEntity.LocationID,
		TrackingNumber:    parcelEntity.TrackingNumber,
		RecipientName:     parcelEntity.RecipientName,
		Weight:            parcelEntity.Weight,
		StorageLocationID: parcelEntity.StorageLocationID,
		Notes:             parcelEntity.Notes,
		Status:            parcelEntity.Status.String(),
		PickedUpBy:        parcelEntity.PickedUpBy,
		DeliveredAt:       parcelEntity.DeliveredAt,
		CreatedAt:         parcelEntity.CreatedAt,
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
