package ticket

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlekSi/pointer"
	"parceltrack/internal/entities"
	"parceltrack/pkg/logger"
)

type Ticket struct {
	repository Repository
	exporter   Exporter
	log        serviceLogger
}

func New(repository Repository, exporter Exporter, log serviceLogger) *Ticket {
	return &Ticket{
		repository: repository,
		exporter:   exporter,
		log:        log,
	}
}

func (s *Ticket) CreateTicket(ctx context.Context, locationID int64, subject, body string) (int64, error) {
	if strings.TrimSpace(subject) == "" {
		return 0, ErrInvalidSubject
	}

	id, err := s.repository.Create(ctx, locationID, subject, body)
	if err != nil {
		return 0, fmt.Errorf("create ticket: %w", err)
	}

	return id, nil
}

func (s *Ticket) GetTicket(ctx context.Context, id int64) (*entities.Ticket, error) {
	ticket, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return ticket, nil
}

func (s *Ticket) GetTickets(ctx context.Context, locationID int64) ([]entities.Ticket, error) {
	tickets, err := s.repository.GetByLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}

	return tickets, nil
}

// UpdateStatus переводит тикет в новый статус. Переход в resolved или
// closed дополнительно выгружает тикет во внешнее хранилище; провал
// выгрузки логируется и смену статуса не блокирует.
func (s *Ticket) UpdateStatus(ctx context.Context, id int64, status entities.TicketStatus) (*entities.Ticket, error) {
	if !isValidStatus(status.String()) {
		return nil, ErrInvalidStatus
	}

	ticket, err := s.repository.Update(ctx, entities.TicketModify{
		ID:     pointer.To(id),
		Status: pointer.To(status),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	if status != entities.TicketResolved && status != entities.TicketClosed {
		return ticket, nil
	}

	binID, err := s.exporter.ExportTicket(ctx, ticket)
	if err != nil {
		s.log.Warn("ticket export failed",
			logger.NewField("ticket_id", id),
			logger.NewField("error", err),
		)
		return ticket, nil
	}

	updated, err := s.repository.Update(ctx, entities.TicketModify{
		ID:          pointer.To(id),
		ExportBinID: pointer.To(binID),
	})
	if err != nil {
		// статус уже сменился, потерян только внешний id
		s.log.Error("store ticket export id",
			logger.NewField("ticket_id", id),
			logger.NewField("bin_id", binID),
			logger.NewField("error", err),
		)
		return ticket, nil
	}

	return updated, nil
}

func isValidStatus(status string) bool {
	switch status {
	case "open", "resolved", "closed":
		return true
	default:
		return false
	}
}
