package parcels_search_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"parceltrack/internal/service/location"
	"parceltrack/internal/service/search"
	"parceltrack/pkg/logger"
)

type parcelMatchDTO struct {
	ID              int64           `json:"id"`
	TrackingNumber  string          `json:"tracking_number"`
	RecipientName   string          `json:"recipient_name"`
	Weight          decimal.Decimal `json:"weight"`
	Status          string          `json:"status"`
	Cost            decimal.Decimal `json:"cost"`
	StorageLocation *string         `json:"storage_location,omitempty"`
}

type recipientSummaryDTO struct {
	DisplayName string          `json:"display_name"`
	Total       int             `json:"total"`
	Pending     int             `json:"pending"`
	Delivered   int             `json:"delivered"`
	TotalCost   decimal.Decimal `json:"total_cost"`
}

type searchResponse struct {
	Query             string                `json:"query"`
	Matches           []parcelMatchDTO      `json:"matches"`
	Summaries         []recipientSummaryDTO `json:"summaries,omitempty"`
	TooManyRecipients bool                  `json:"too_many_recipients"`
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
	locationIDStr := r.URL.Query().Get("location_id")
	locationID, err := strconv.ParseInt(locationIDStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	query := r.URL.Query().Get("q")

	result, err := h.service.Search(r.Context(), locationID, query)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrEmptyQuery):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, location.ErrLocationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// ноль совпадений — пустая выдача, не ошибка
	response := searchResponse{
		Query:   query,
		Matches: []parcelMatchDTO{},
	}
	if result != nil {
		response.Query = result.Query
		response.TooManyRecipients = result.TooManyRecipients
		response.Matches = make([]parcelMatchDTO, len(result.Matches))
		for i, match := range result.Matches {
			response.Matches[i] = parcelMatchDTO{
				ID:             match.Parcel.ID,
				TrackingNumber: match.Parcel.TrackingNumber,
				RecipientName:  match.Parcel.RecipientName,
				Weight:         match.Parcel.Weight,
				Status:         match.Parcel.Status.String(),
				Cost:           match.Cost,
			}
			if match.StorageLocation != nil {
				response.Matches[i].StorageLocation = &match.StorageLocation.Name
			}
		}
		if !result.TooManyRecipients {
			response.Summaries = make([]recipientSummaryDTO, len(result.Summaries))
			for i, summary := range result.Summaries {
				response.Summaries[i] = recipientSummaryDTO{
					DisplayName: summary.DisplayName,
					Total:       summary.Total,
					Pending:     summary.Pending,
					Delivered:   summary.Delivered,
					TotalCost:   summary.TotalCost,
				}
			}
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
