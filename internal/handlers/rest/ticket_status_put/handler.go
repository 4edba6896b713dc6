package ticket_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"parceltrack/internal/entities"
	"parceltrack/internal/service/ticket"
	"parceltrack/pkg/logger"
)

type ticketStatusRequest struct {
	Status string `json:"status"`
}

type ticketStatusResponse struct {
	ID          int64   `json:"id"`
	Status      string  `json:"status"`
	ExportBinID *string `json:"export_bin_id,omitempty"`
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

	var statusDTO ticketStatusRequest
	err = json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ticketEntity, err := h.service.UpdateStatus(r.Context(), id, entities.TicketStatus(statusDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, ticket.ErrTicketNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := ticketStatusResponse{
		ID:          ticketEntity.ID,
		Status:      ticketEntity.Status.String(),
		ExportBinID: ticketEntity.ExportBinID,
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
