package ticket_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parceltrack/internal/service/ticket"
	"parceltrack/pkg/logger"
)

type ticketCreateRequest struct {
	LocationID int64  `json:"location_id"`
	Subject    string `json:"subject"`
	Body       string `json:"body,omitempty"`
}

type ticketCreateResponse struct {
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
	var ticketCreateDTO ticketCreateRequest
	err := json.NewDecoder(r.Body).Decode(&ticketCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := h.service.CreateTicket(r.Context(), ticketCreateDTO.LocationID, ticketCreateDTO.Subject, ticketCreateDTO.Body)
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrMissingRequiredFields),
			errors.Is(err, ticket.ErrInvalidSubject):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, ticket.ErrLocationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := ticketCreateResponse{
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
