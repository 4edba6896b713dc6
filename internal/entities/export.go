package entities

import (
	"time"
)

// Формат выгрузки локации во внешнее хранилище. Набор полей — контракт,
// который может читать стороннее тулинг, менять его несовместимо.

type LocationExport struct {
	ExportedAt       time.Time               `json:"exported_at"`
	Location         LocationExportInfo      `json:"location"`
	StorageLocations []StorageLocationExport `json:"storage_locations"`
	PricingTiers     []PricingTierExport     `json:"pricing_tiers"`
	Parcels          []ParcelExport          `json:"packages"`
}

type LocationExportInfo struct {
	Name           string  `json:"name"`
	PricingEnabled bool    `json:"pricing_enabled"`
	PricingType    string  `json:"pricing_type"`
	PerPoundRate   *string `json:"per_pound_rate"`
	IsSuspended    bool    `json:"is_suspended"`
}

type StorageLocationExport struct {
	Name string `json:"name"`
}

type PricingTierExport struct {
	MinWeight string `json:"min_weight"`
	MaxWeight string `json:"max_weight"`
	Price     string `json:"price"`
}

type ParcelExport struct {
	TrackingNumber  string     `json:"tracking_number"`
	RecipientName   string     `json:"recipient_name"`
	Weight          string     `json:"weight"`
	StorageLocation *string    `json:"storage_location"`
	Notes           string     `json:"notes"`
	Status          string     `json:"status"`
	PickedUpBy      *string    `json:"picked_up_by_last_name"`
	DeliveredAt     *time.Time `json:"delivered_at"`
	Cost            string     `json:"cost"`
	CreatedAt       time.Time  `json:"created_at"`
}

// TicketExport одиночная выгрузка закрытого тикета, ротации не подлежит.
type TicketExport struct {
	ExportedAt time.Time `json:"exported_at"`
	Location   string    `json:"location"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
