//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ticket_post_test
package ticket_post

import (
	"context"

	"parceltrack/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateTicket(ctx context.Context, locationID int64, subject, body string) (int64, error)
}
