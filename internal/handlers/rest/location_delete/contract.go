//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_delete_test
package location_delete

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
	DeleteLocation(ctx context.Context, id int64) error
}
