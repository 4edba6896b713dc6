//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=archive_sweep_post_test
package archive_sweep_post

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
	ArchiveSweep(ctx context.Context, monthsOld int) (int64, error)
}
