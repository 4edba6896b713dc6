//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=backup_settings_put_test
package backup_settings_put

import (
	"context"
	"time"

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
	UpdateSettings(ctx context.Context, settingsModify entities.BackupSettingsModify) (*entities.BackupSettings, error)
}

type Scheduler interface {
	Start(ctx context.Context, interval time.Duration) error
	Stop()
}
