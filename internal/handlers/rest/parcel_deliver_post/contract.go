//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_deliver_post_test
package parcel_deliver_post

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
	DeliverParcel(ctx context.Context, id int64, pickedUpBy string) (*entities.Parcel, error)
}
