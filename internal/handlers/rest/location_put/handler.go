package location_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"parceltrack/internal/entities"
	"parceltrack/internal/service/location"
	"parceltrack/pkg/logger"
)

type locationUpdateRequest struct {
	ID             int64            `json:"id"`
	Name           *string          `json:"name,omitempty"`
	PricingEnabled *bool            `json:"pricing_enabled,omitempty"`
	PricingType    *string          `json:"pricing_type,omitempty"`
	PerPoundRate   *decimal.Decimal `json:"per_pound_rate,omitempty"`
	IsSuspended    *bool            `json:"is_suspended,omitempty"`
}

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
	var locationUpdateDTO locationUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&locationUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	locationModifyEntity := entities.LocationModify{
		ID: &locationUpdateDTO.ID,
	}

	// Опциональные параметры
	if locationUpdateDTO.Name != nil {
		locationModifyEntity.Name = locationUpdateDTO.Name
	}
	if locationUpdateDTO.PricingEnabled != nil {
		locationModifyEntity.PricingEnabled = locationUpdateDTO.PricingEnabled
	}
	if locationUpdateDTO.PricingType != nil {
		pricingType := entities.PricingType(*locationUpdateDTO.PricingType)
		locationModifyEntity.PricingType = &pricingType
	}
	if locationUpdateDTO.PerPoundRate != nil {
		locationModifyEntity.PerPoundRate = locationUpdateDTO.PerPoundRate
	}
	if locationUpdateDTO.IsSuspended != nil {
		locationModifyEntity.IsSuspended = locationUpdateDTO.IsSuspended
	}

	res, err := h.service.UpdateLocation(r.Context(), locationModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrMissingRequiredFields),
			errors.Is(err, location.ErrInvalidName),
			errors.Is(err, location.ErrInvalidPricingType),
			errors.Is(err, location.ErrInvalidRate):
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

	response := locationResponse{
		ID:             res.ID,
		Name:           res.Name,
		PricingEnabled: res.PricingEnabled,
		PricingType:    res.PricingType.String(),
		PerPoundRate:   res.PerPoundRate,
		IsSuspended:    res.IsSuspended,
		CreatedAt:      res.CreatedAt,
		UpdatedAt:      res.UpdatedAt,
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
