package locations_get

import (
	"encoding/json"
	"net/http"

	"parceltrack/pkg/logger"
)

type locationDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	PricingEnabled bool   `json:"pricing_enabled"`
	PricingType    string `json:"pricing_type"`
	IsSuspended    bool   `json:"is_suspended"`
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
	locationEntities, err := h.service.GetLocations(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	locationDTOs := make([]locationDTO, len(locationEntities))
	for i, locationEntity := range locationEntities {
		locationDTOs[i].ID = locationEntity.ID
		locationDTOs[i].Name = locationEntity.Name
		locationDTOs[i].PricingEnabled = locationEntity.PricingEnabled
		locationDTOs[i].PricingType = locationEntity.PricingType.String()
		locationDTOs[i].IsSuspended = locationEntity.IsSuspended
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(locationDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
