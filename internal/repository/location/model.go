package location

import (
	"time"

	"github.com/shopspring/decimal"
)

type LocationDB struct {
	ID             int64
	Name           string
	PricingEnabled bool
	PricingType    string
	PerPoundRate   *decimal.Decimal
	IsSuspended    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type LocationModifyDB struct {
	ID             *int64
	Name           *string
	PricingEnabled *bool
	PricingType    *string
	PerPoundRate   *decimal.Decimal
	IsSuspended    *bool
}

type StorageLocationDB struct {
	ID         int64
	LocationID int64
	Name       string
}

type PricingTierDB struct {
	ID         int64
	LocationID int64
	MinWeight  decimal.Decimal
	MaxWeight  decimal.Decimal
	Price      decimal.Decimal
}
