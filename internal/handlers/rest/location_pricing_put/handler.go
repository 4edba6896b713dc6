package location_pricing_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"parceltrack/internal/entities"
	"parceltrack/internal/service/location"
)

type pricingTierDTO struct {
	MinWeight decimal.Decimal `json:"min_weight"`
	MaxWeight decimal.Decimal `json:"max_weight"`
	Price     decimal.Decimal `json:"price"`
}

type pricingTiersRequest struct {
	Tiers []pricingTierDTO `json:"tiers"`
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

	var tiersDTO pricingTiersRequest
	err = json.NewDecoder(r.Body).Decode(&tiersDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// порядок диапазонов в запросе — порядок подбора цены
	tiers := make([]entities.PricingTier, len(tiersDTO.Tiers))
	for i, tier := range tiersDTO.Tiers {
		tiers[i] = entities.PricingTier{
			MinWeight: tier.MinWeight,
			MaxWeight: tier.MaxWeight,
			Price:     tier.Price,
		}
	}

	err = h.service.ReplacePricingTiers(r.Context(), id, tiers)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrInvalidTier):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, location.ErrLocationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
