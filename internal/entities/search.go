package entities

import (
	"github.com/shopspring/decimal"
)

// Порог, после которого сводки по получателям не показываются.
const MaxRecipientSummaries = 3

// ParcelMatch посылка из поисковой выдачи с вычисленными на момент запроса
// полями: стоимость хранения и развернутая ячейка (derived, не хранятся).
type ParcelMatch struct {
	Parcel          Parcel
	Cost            decimal.Decimal
	StorageLocation *StorageLocation
}

// RecipientSummary агрегат по всем посылкам одного нормализованного
// получателя. TotalCost суммирует только невыданные посылки.
type RecipientSummary struct {
	DisplayName string
	Total       int
	Pending     int
	Delivered   int
	TotalCost   decimal.Decimal
}

// SearchResult результат поиска. Отсутствие совпадений кодируется nil
// результатом у вызывающего, а не пустым SearchResult.
type SearchResult struct {
	Query             string
	Matches           []ParcelMatch
	Summaries         []RecipientSummary
	TooManyRecipients bool
}
