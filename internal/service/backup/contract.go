//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=backup_test
package backup

import (
	"context"

	"parceltrack/internal/entities"
	"parceltrack/pkg/logger"
)

type Repository interface {
	GetSettings(ctx context.Context) (*entities.BackupSettings, error)
	UpdateSettings(ctx context.Context, settingsModify entities.BackupSettingsModify) error

	ListByLocation(ctx context.Context, locationID int64) ([]entities.LocationBackup, error)
	CreateRecord(ctx context.Context, locationID int64, binID string) (int64, error)
	DeleteRecord(ctx context.Context, id int64) error
}

type LocationRepository interface {
	GetAll(ctx context.Context) ([]entities.Location, error)
	GetByID(ctx context.Context, id int64) (*entities.Location, error)
	GetPricingTiers(ctx context.Context, locationID int64) ([]entities.PricingTier, error)
	GetStorageLocations(ctx context.Context, locationID int64) ([]entities.StorageLocation, error)
}

type ParcelRepository interface {
	GetByLocation(ctx context.Context, locationID int64) ([]entities.Parcel, error)
}

type Gateway interface {
	CreateBin(ctx context.Context, name string, payload []byte) (string, error)
	DeleteBin(ctx context.Context, binID string) error
	ValidateKey(ctx context.Context) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
