//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tickets_get_test
package tickets_get

import (
	"context"

	"parceltrack/internal/entities"
	"parceltrack/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetTickets(ctx context.Context, locationID int64) ([]entities.Ticket, error)
}
