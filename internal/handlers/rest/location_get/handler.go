package location_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"parceltrack/internal/service/location"
	"parceltrack/pkg/logger"
)

type locationResponse struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	PricingEnabled bool             `json:"pricing_enabled"`
	PricingType    string           `json:"pricing_type"`
	PerPoundRate   *decimal.Decimal `json:"per_pound_rate,omitempty"`
	IsSuspended    bool             `json:"is_suspended"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
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

	locationEntity, err := h.service.GetLocation(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrLocationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := locationResponse{
		ID:             locationEntity.ID,
		Name:           locationEntity.Name,
		PricingEnabled: locationEntity.PricingEnabled,
		PricingType:    locationEntity.PricingType.String(),
		PerPoundRate:   locationEntity.PerPoundRate,
		IsSuspended:    locationEntity.IsSuspended,
		CreatedAt:      locationEntity.CreatedAt,
		UpdatedAt:      locationEntity.UpdatedAt,
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
