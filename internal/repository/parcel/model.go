package parcel

import (
	"time"

	"github.com/shopspring/decimal"
)

type ParcelDB struct {
	ID                int64
	LocationID        int64
	TrackingNumber    string
	RecipientName     string
	Weight            decimal.Decimal
	StorageLocationID *int64
	Notes             string
	Status            string
	PickedUpBy        *string
	DeliveredAt       *time.Time
	CreatedAt         time.Time
}

type ParcelModifyDB struct {
	ID                *int64
	LocationID        *int64
	TrackingNumber    *string
	RecipientName     *string
	Weight            *decimal.Decimal
	StorageLocationID *int64
	Notes             *string
	Status            *string
	PickedUpBy        *string
}
