package tickets_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"parceltrack/internal/service/ticket"
	"parceltrack/pkg/logger"
)

type ticketDTO struct {
	ID        int64     `json:"id"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
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

	ticketEntities, err := h.service.GetTickets(r.Context(), locationID)
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrLocationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	ticketDTOs := make([]ticketDTO, len(ticketEntities))
	for i, ticketEntity := range ticketEntities {
		ticketDTOs[i].ID = ticketEntity.ID
		ticketDTOs[i].Subject = ticketEntity.Subject
		ticketDTOs[i].Status = ticketEntity.Status.String()
		ticketDTOs[i].CreatedAt = ticketEntity.CreatedAt
		ticketDTOs[i].UpdatedAt = ticketEntity.UpdatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(ticketDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
