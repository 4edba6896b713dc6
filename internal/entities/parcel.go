package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Parcel struct {
	ID                int64
	LocationID        int64
	TrackingNumber    string
	RecipientName     string
	Weight            decimal.Decimal
	StorageLocationID *int64
	Notes             string
	Status            ParcelStatus
	PickedUpBy        *string
	DeliveredAt       *time.Time
	CreatedAt         time.Time
}

type ParcelStatus string

const (
	ParcelPending   ParcelStatus = "pending"
	ParcelDelivered ParcelStatus = "delivered"
)

const DefaultParcelStatus = ParcelPending

func (s ParcelStatus) String() string {
	return string(s)
}

// IsDelivered проверяет статус вместе с инвариантом: delivered_at заполнен
// тогда и только тогда, когда посылка выдана.
func (p *Parcel) IsDelivered() bool {
	return p.Status == ParcelDelivered && p.DeliveredAt != nil
}

type ParcelModify struct {
	ID                *int64
	LocationID        *int64
	TrackingNumber    *string
	RecipientName     *string
	Weight            *decimal.Decimal
	StorageLocationID *int64
	Notes             *string
	Status            *ParcelStatus
	PickedUpBy        *string
}

// BulkParcelChanges разрешенный к массовому изменению набор полей.
// Остальные поля в массовых операциях игнорируются, а не отклоняются.
type BulkParcelChanges struct {
	Delivered     *bool
	RecipientName *string
	PickedUpBy    *string
}

func (c BulkParcelChanges) IsEmpty() bool {
	return c.Delivered == nil && c.RecipientName == nil && c.PickedUpBy == nil
}

// BulkUpdateResult итог массовой операции: каждая посылка обрабатывается
// независимо, отказ одной не откатывает остальные.
type BulkUpdateResult struct {
	Updated int64
	Items   []BulkUpdateItem
}

type BulkUpdateItem struct {
	ID      int64
	Updated bool
	Error   string
}

// ArchivedParcel сжатая append-only запись о выданной посылке,
// создается при переносе в холодное хранение. Обратного пути нет.
type ArchivedParcel struct {
	ID             int64
	LocationID     int64
	TrackingNumber string
	RecipientName  string
	PickedUpBy     *string
	DeliveredAt    time.Time
	ArchivedAt     time.Time
}
