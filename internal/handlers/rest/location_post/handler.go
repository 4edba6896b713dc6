package location_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"parceltrack/internal/entities"
	"parceltrack/internal/service/location"
	"parceltrack/pkg/logger"
)

type locationCreateRequest struct {
	Name           string           `json:"name"`
	PricingEnabled *bool            `json:"pricing_enabled,omitempty"`
	PricingType    *string          `json:"pricing_type,omitempty"`
	PerPoundRate   *decimal.Decimal `json:"per_pound_rate,omitempty"`
}

type locationCreateResponse struct {
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
	var locationCreateDTO locationCreateRequest
	err := json.NewDecoder(r.Body).Decode(&locationCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	locationModifyEntity := entities.LocationModify{
		Name:           &locationCreateDTO.Name,
		PricingEnabled: locationCreateDTO.PricingEnabled,
		PerPoundRate:   locationCreateDTO.PerPoundRate,
	}
	if locationCreateDTO.PricingType != nil {
		pricingType := entities.PricingType(*locationCreateDTO.PricingType)
		locationModifyEntity.PricingType = &pricingType
	}

	id, err := h.service.CreateLocation(r.Context(), locationModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrMissingRequiredFields),
			errors.Is(err, location.ErrInvalidName),
			errors.Is(err, location.ErrInvalidPricingType),
			errors.Is(err, location.ErrInvalidRate):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, location.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := locationCreateResponse{
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
