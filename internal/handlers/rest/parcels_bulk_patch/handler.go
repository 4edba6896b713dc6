package parcels_bulk_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"parceltrack/internal/entities"
	"parceltrack/internal/service/parcel"
	"parceltrack/pkg/logger"
)

type bulkUpdateRequest struct {
	LocationID    int64   `json:"location_id"`
	ParcelIDs     []int64 `json:"parcel_ids"`
	Delivered     *bool   `json:"delivered,omitempty"`
	RecipientName *string `json:"recipient_name,omitempty"`
	PickedUpBy    *string `json:"picked_up_by,omitempty"`
}

type bulkUpdateItem struct {
	ID      int64  `json:"id"`
	Updated bool   `json:"updated"`
	Error   string `json:"error,omitempty"`
}

type bulkUpdateResponse struct {
	Updated int64            `json:"updated"`
	Items   []bulkUpdateItem `json:"items"`
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
	var bulkDTO bulkUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&bulkDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	changes := entities.BulkParcelChanges{
		Delivered:     bulkDTO.Delivered,
		RecipientName: bulkDTO.RecipientName,
		PickedUpBy:    bulkDTO.PickedUpBy,
	}

	result, err := h.service.BulkUpdate(r.Context(), bulkDTO.LocationID, bulkDTO.ParcelIDs, changes)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrEmptyBulkIDs),
			errors.Is(err, parcel.ErrEmptyBulkChanges):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := bulkUpdateResponse{
		Updated: result.Updated,
		Items:   make([]bulkUpdateItem, len(result.Items)),
	}
	for i, item := range result.Items {
		response.Items[i] = bulkUpdateItem{
			ID:      item.ID,
			Updated: item.Updated,
			Error:   item.Error,
		}
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
