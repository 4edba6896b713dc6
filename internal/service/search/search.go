package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"parceltrack/internal/entities"
	"parceltrack/internal/service/pricing"
)

type Search struct {
	parcels   Repository
	locations LocationRepository
}

func New(parcels Repository, locations LocationRepository) *Search {
	return &Search{
		parcels:   parcels,
		locations: locations,
	}
}

// Search ищет посылки локации по подстроке в имени получателя или
// трек-номере (без учета регистра) и строит сводки по получателям.
// Ноль совпадений — это (nil, nil): вызывающий отличает "поиск не
// выполнялся" от "выполнялся, пусто".
func (s *Search) Search(ctx context.Context, locationID int64, query string) (*entities.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	location, err := s.locations.GetByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}

	matched, err := s.parcels.SearchParcels(ctx, locationID, query)
	if err != nil {
		return nil, fmt.Errorf("search parcels: %w", err)
	}
	if len(matched) == 0 {
		return nil, nil
	}

	tiers, err := s.locations.GetPricingTiers(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("get pricing tiers: %w", err)
	}

	storageByID, err := s.storageLocationIndex(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("get storage locations: %w", err)
	}

	cfg := pricing.ConfigFromLocation(location)

	matches := make([]entities.ParcelMatch, 0, len(matched))
	for _, parcel := range matched {
		cost, err := pricing.Cost(parcel.Weight, cfg, tiers)
		if err != nil {
			return nil, fmt.Errorf("cost for parcel %d: %w", parcel.ID, err)
		}

		var storage *entities.StorageLocation
		if parcel.StorageLocationID != nil {
			storage = storageByID[*parcel.StorageLocationID]
		}

		matches = append(matches, entities.ParcelMatch{
			Parcel:          parcel,
			Cost:            cost,
			StorageLocation: storage,
		})
	}

	summaries := groupByRecipient(matches)

	return &entities.SearchResult{
		Query:             query,
		Matches:           matches,
		Summaries:         summaries,
		TooManyRecipients: len(summaries) > entities.MaxRecipientSummaries,
	}, nil
}

func (s *Search) storageLocationIndex(ctx context.Context, locationID int64) (map[int64]*entities.StorageLocation, error) {
	storageLocations, err := s.locations.GetStorageLocations(ctx, locationID)
	if err != nil {
		return nil, err
	}

	index := make(map[int64]*entities.StorageLocation, len(storageLocations))
	for i := range storageLocations {
		index[storageLocations[i].ID] = &storageLocations[i]
	}
	return index, nil
}

// groupByRecipient сливает совпадения по нормализованному имени получателя.
// Разные варианты регистра и пробелов попадают в одну группу, отображаемое
// имя — первое встреченное в исходном написании. Порядок групп — порядок
// первого появления.
func groupByRecipient(matches []entities.ParcelMatch) []entities.RecipientSummary {
	index := make(map[string]int, len(matches))
	summaries := make([]entities.RecipientSummary, 0, len(matches))

	for _, match := range matches {
		key := normalizeRecipient(match.Parcel.RecipientName)

		i, ok := index[key]
		if !ok {
			i = len(summaries)
			index[key] = i
			summaries = append(summaries, entities.RecipientSummary{
				DisplayName: match.Parcel.RecipientName,
				TotalCost:   decimal.Zero,
			})
		}

		summaries[i].Total++
		if match.Parcel.IsDelivered() {
			summaries[i].Delivered++
		} else {
			summaries[i].Pending++
			// выданные посылки в сумму не входят
			summaries[i].TotalCost = summaries[i].TotalCost.Add(match.Cost)
		}
	}

	return summaries
}

func normalizeRecipient(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
