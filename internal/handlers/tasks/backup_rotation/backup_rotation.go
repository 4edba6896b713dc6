package backup_rotation

import (
	"context"

	"parceltrack/internal/entities"
	"parceltrack/pkg/logger"
)

type Service interface {
	RunForAllLocations(ctx context.Context) (*entities.BackupRunReport, error)
}

type SettingsRepository interface {
	GetSettings(ctx context.Context) (*entities.BackupSettings, error)
}

type BackupRotation struct {
	log      logger.Logger
	service  Service
	settings SettingsRepository
}

func NewBackupRotation(log logger.Logger, service Service, settings SettingsRepository) *BackupRotation {
	return &BackupRotation{
		log:      log,
		service:  service,
		settings: settings,
	}
}

// Do гоняет ротацию по всем локациям. Выключенные в настройках бэкапы
// превращают тик в no-op, снимать таймер для этого не нужно.
func (b *BackupRotation) Do(ctx context.Context) error {
	settings, err := b.settings.GetSettings(ctx)
	if err != nil {
		return err
	}
	if !settings.Enabled {
		return nil
	}

	report, err := b.service.RunForAllLocations(ctx)
	if err != nil {
		return err
	}

	if failed := report.Failed(); failed > 0 {
		b.log.With(
			logger.NewField("locations", len(report.Results)),
			logger.NewField("failed", failed),
		).Warn("backup rotation finished with failures")
		return nil
	}

	b.log.With(
		logger.NewField("locations", len(report.Results)),
	).Info("backup rotation")

	return nil
}

func (b *BackupRotation) Info() string {
	return "backup rotation"
}
