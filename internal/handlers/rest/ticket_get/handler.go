package ticket_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"parceltrack/internal/service/ticket"
	"parceltrack/pkg/logger"
)

type ticketResponse struct {
	ID          int64     `json:"id"`
	LocationID  int64     `json:"location_id"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body,omitempty"`
	Status      string    `json:"status"`
	ExportBinID *string   `json:"export_bin_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
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

	ticketEntity, err := h.service.GetTicket(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrTicketNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := ticketResponse{
		ID:          ticketEntity.ID,
		LocationID:  ticketEntity.LocationID,
		Subject:     ticketEntity.Subject,
		Body:        ticketEntity.Body,
		Status:      ticketEntity.Status.String(),
		ExportBinID: ticketEntity.ExportBinID,
		CreatedAt:   ticketEntity.CreatedAt,
		UpdatedAt:   ticketEntity.UpdatedAt,
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
