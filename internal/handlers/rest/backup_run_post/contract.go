//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=backup_run_post_test
package backup_run_post

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
	RunForLocation(ctx context.Context, locationID int64) (*entities.LocationBackupResult, error)
}
