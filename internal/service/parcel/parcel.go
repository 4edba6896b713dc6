package parcel

import (
	"context"
	"fmt"
	"time"

	"parceltrack/internal/entities"
)

const DefaultArchiveMonths = 2

type Parcel struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Parcel {
	return &Parcel{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Parcel) CreateParcel(ctx context.Context, parcelModify entities.ParcelModify) (int64, error) {
	if parcelModify.LocationID == nil ||
		parcelModify.TrackingNumber == nil ||
		parcelModify.RecipientName == nil ||
		parcelModify.Weight == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidTrackingNumber(*parcelModify.TrackingNumber) {
		return 0, ErrInvalidTrackingNumber
	}
	if !isValidRecipientName(*parcelModify.RecipientName) {
		return 0, ErrInvalidRecipientName
	}
	if !parcelModify.Weight.IsPositive() {
		return 0, ErrInvalidWeight
	}

	// принадлежность storage_location_id той же локации проверяет
	// хранилище, отсюда приходит ErrStorageLocationMismatch
	id, err := s.repository.Create(ctx, parcelModify)
	if err != nil {
		return 0, fmt.Errorf("create parcel: %w", err)
	}

	return id, nil
}

func (s *Parcel) GetParcel(ctx context.Context, id int64) (*entities.Parcel, error) {
	parcelEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}

	return parcelEntity, nil
}

// DeliverParcel переводит посылку в delivered. Повторная выдача —
// перезапись фамилии забравшего, delivered_at при этом не сдвигается.
func (s *Parcel) DeliverParcel(ctx context.Context, id int64, pickedUpBy string) (*entities.Parcel, error) {
	deliveredAt := time.Now().UTC()

	parcelEntity, err := s.repository.MarkDelivered(ctx, id, pickedUpBy, deliveredAt)
	if err != nil {
		return nil, fmt.Errorf("deliver parcel: %w", err)
	}

	return parcelEntity, nil
}

// BulkUpdate применяет изменения к каждой посылке независимо и считает
// реально обновленные строки. Посылки чужой локации молча пропускаются —
// изоляция арендаторов без утечки информации о существовании id.
func (s *Parcel) BulkUpdate(ctx context.Context, locationID int64, ids []int64, changes entities.BulkParcelChanges) (*entities.BulkUpdateResult, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyBulkIDs
	}
	if changes.IsEmpty() {
		return nil, ErrEmptyBulkChanges
	}

	deliveredAt := time.Now().UTC()
	result := &entities.BulkUpdateResult{
		Items: make([]entities.BulkUpdateItem, 0, len(ids)),
	}

	for _, id := range ids {
		updated, err := s.repository.UpdateScoped(ctx, id, locationID, changes, deliveredAt)

		item := entities.BulkUpdateItem{ID: id, Updated: updated}
		if err != nil {
			// неудавшийся id просто не попадает в счетчик
			item.Updated = false
			item.Error = err.Error()
		} else if updated {
			result.Updated++
		}
		result.Items = append(result.Items, item)
	}

	return result, nil
}

// ArchiveSweep переносит выданные посылки старше monthsOld месяцев в
// холодное хранение и удаляет их из живой таблицы одной транзакцией.
// Повторный запуск без подходящих посылок — ноп.
func (s *Parcel) ArchiveSweep(ctx context.Context, monthsOld int) (int64, error) {
	if monthsOld < 1 {
		return 0, ErrInvalidMonths
	}

	cutoff := time.Now().UTC().AddDate(0, -monthsOld, 0)

	var archived int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		archived, err = s.repository.ArchiveDeliveredBefore(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("archive delivered before %s: %w", cutoff.Format(time.RFC3339), err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return archived, nil
}
