package parcel_deliver_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"parceltrack/internal/service/parcel"
	"parceltrack/pkg/logger"
)

type parcelDeliverRequest struct {
	PickedUpBy string `json:"picked_up_by"`
}

type parcelDeliverResponse struct {
	ID          int64     `json:"id"`
	Status      string    `json:"status"`
	PickedUpBy  *string   `json:"picked_up_by,omitempty"`
	DeliveredAt time.Time `json:"delivered_at"`
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

	var deliverDTO parcelDeliverRequest
	err = json.NewDecoder(r.Body).Decode(&deliverDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelEntity, err := h.service.DeliverParcel(r.Context(), id, deliverDTO.PickedUpBy)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := parcelDeliverResponse{
		ID:         parcelEntity.ID,
		Status:     parcelEntity.Status.String(),
		PickedUpBy: parcelEntity.PickedUpBy,
	}
	if parcelEntity.DeliveredAt != nil {
		response.DeliveredAt = *parcelEntity.DeliveredAt
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
