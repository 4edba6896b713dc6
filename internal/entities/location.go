package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Location struct {
	ID             int64
	Name           string
	PricingEnabled bool
	PricingType    PricingType
	PerPoundRate   *decimal.Decimal
	IsSuspended    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PricingType string

const (
	PricingPerPound   PricingType = "per_pound"
	PricingRangeBased PricingType = "range_based"
)

const DefaultPricingType = PricingPerPound

func (t PricingType) String() string {
	return string(t)
}

type LocationModify struct {
	ID             *int64
	Name           *string
	PricingEnabled *bool
	PricingType    *PricingType
	PerPoundRate   *decimal.Decimal
	IsSuspended    *bool
}

// PricingTier диапазон веса с фиксированной ценой. Порядок диапазонов у
// локации — порядок вставки, подбор цены их не сортирует.
type PricingTier struct {
	ID         int64
	LocationID int64
	MinWeight  decimal.Decimal
	MaxWeight  decimal.Decimal
	Price      decimal.Decimal
}

type StorageLocation struct {
	ID         int64
	LocationID int64
	Name       string
}
