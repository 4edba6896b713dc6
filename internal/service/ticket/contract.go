//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ticket_test
package ticket

import (
	"context"

	"parceltrack/internal/entities"
	"parceltrack/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, locationID int64, subject, body string) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Ticket, error)
	GetByLocation(ctx context.Context, locationID int64) ([]entities.Ticket, error)
	Update(ctx context.Context, ticketModifyEntity entities.TicketModify) (*entities.Ticket, error)
}

// Exporter одиночная выгрузка тикета во внешнее хранилище.
type Exporter interface {
	ExportTicket(ctx context.Context, ticket *entities.Ticket) (string, error)
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
