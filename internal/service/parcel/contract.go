//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"
	"time"

	"parceltrack/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, parcelModify entities.ParcelModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	MarkDelivered(ctx context.Context, id int64, pickedUpBy string, deliveredAt time.Time) (*entities.Parcel, error)
	UpdateScoped(ctx context.Context, id, locationID int64, changes entities.BulkParcelChanges, deliveredAt time.Time) (bool, error)
	ArchiveDeliveredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
