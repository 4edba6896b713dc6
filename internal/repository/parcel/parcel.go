package parcel

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parceltrack/internal/entities"
	"parceltrack/internal/repository"
	"parceltrack/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const parcelColumns = `id, location_id, tracking_number, recipient_name, weight,
	storage_location_id, notes, status, picked_up_by, delivered_at, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, parcelModify entities.ParcelModify) (int64, error) {
	parcelModifyModel := FromDomainModify(&parcelModify)
	query := `INSERT INTO parcels (location_id, tracking_number, recipient_name, weight, storage_location_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		parcelModifyModel.LocationID,
		parcelModifyModel.TrackingNumber,
		parcelModifyModel.RecipientName,
		parcelModifyModel.Weight,
		parcelModifyModel.StorageLocationID,
		parcelModifyModel.Notes,
	).Scan(&id)
	if err != nil {
		// составной FK (storage_location_id, location_id) ловит ячейку чужой локации
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, parcel.ErrStorageLocationMismatch
		}
		return 0, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE id = $1`

	parcelModel, err := r.scanOne(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}

		return nil, fmt.Errorf("unexpected parcel repository getbyid error: %w", err)
	}

	return ToDomain(parcelModel), nil
}

// MarkDelivered переводит посылку в delivered. Повторная выдача
// перезаписывает фамилию получателя, но COALESCE сохраняет исходный
// момент выдачи.
func (r *Repository) MarkDelivered(ctx context.Context, id int64, pickedUpBy string, deliveredAt time.Time) (*entities.Parcel, error) {
	query := `UPDATE parcels
		SET status = 'delivered',
			picked_up_by = $2,
			delivered_at = COALESCE(delivered_at, $3)
		WHERE id = $1
		RETURNING ` + parcelColumns

	parcelModel, err := r.scanOne(r.querier.QueryRow(ctx, query, id, pickedUpBy, deliveredAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}

		return nil, fmt.Errorf("unexpected parcel repository markdelivered error: %w", err)
	}

	return ToDomain(parcelModel), nil
}

// UpdateScoped изменяет посылку только внутри своей локации: предикат по
// location_id молча пропускает чужие id, не раскрывая их существование.
func (r *Repository) UpdateScoped(ctx context.Context, id, locationID int64, changes entities.BulkParcelChanges, deliveredAt time.Time) (bool, error) {
	builder := qb.
		Update("parcels")

	// опционнные поля
	if changes.Delivered != nil {
		if *changes.Delivered {
			builder = builder.
				Set("status", entities.ParcelDelivered.String()).
				Set("delivered_at", sq.Expr("COALESCE(delivered_at, ?)", deliveredAt))
		} else {
			builder = builder.
				Set("status", entities.ParcelPending.String()).
				Set("delivered_at", nil).
				Set("picked_up_by", nil)
		}
	}
	if changes.RecipientName != nil {
		builder = builder.Set("recipient_name", changes.RecipientName)
	}
	if changes.PickedUpBy != nil {
		builder = builder.Set("picked_up_by", changes.PickedUpBy)
	}

	builder = builder.
		Where(sq.Eq{"id": id, "location_id": locationID})

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("unexpected parcel repository updatescoped error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("unexpected parcel repository updatescoped error: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ArchiveDeliveredBefore переносит давно выданные посылки в холодное
// хранение одним выражением: удаляемые строки сразу ложатся в архив.
func (r *Repository) ArchiveDeliveredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `WITH moved AS (
			DELETE FROM parcels
			WHERE status = 'delivered' AND delivered_at < $1
			RETURNING location_id, tracking_number, recipient_name, picked_up_by, delivered_at
		)
		INSERT INTO archived_parcels (location_id, tracking_number, recipient_name, picked_up_by, delivered_at, archived_at)
		SELECT location_id, tracking_number, recipient_name, picked_up_by, delivered_at, NOW()
		FROM moved`

	tag, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository archive error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) SearchParcels(ctx context.Context, locationID int64, query string) ([]entities.Parcel, error) {
	sqlQuery := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE location_id = $1
			AND (recipient_name ILIKE '%' || $2 || '%' OR tracking_number ILIKE '%' || $2 || '%')
		ORDER BY created_at, id`

	return r.queryList(ctx, "search", sqlQuery, locationID, query)
}

func (r *Repository) GetByLocation(ctx context.Context, locationID int64) ([]entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE location_id = $1
		ORDER BY created_at, id`

	return r.queryList(ctx, "getbylocation", query, locationID)
}

func (r *Repository) ClearStorageRefs(ctx context.Context, storageLocationID int64) (int64, error) {
	query := `UPDATE parcels
		SET storage_location_id = NULL
		WHERE storage_location_id = $1`

	tag, err := r.querier.Exec(ctx, query, storageLocationID)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository clearstoragerefs error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) queryList(ctx context.Context, op, query string, args ...interface{}) ([]entities.Parcel, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository %s error: %w", op, err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 8)
	for rows.Next() {
		var parcelModel ParcelDB
		err := rows.Scan(
			&parcelModel.ID,
			&parcelModel.LocationID,
			&parcelModel.TrackingNumber,
			&parcelModel.RecipientName,
			&parcelModel.Weight,
			&parcelModel.StorageLocationID,
			&parcelModel.Notes,
			&parcelModel.Status,
			&parcelModel.PickedUpBy,
			&parcelModel.DeliveredAt,
			&parcelModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected parcel repository %s error: %w", op, err)
		}
		parcelModels = append(parcelModels, parcelModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository %s error: %w", op, err)
	}

	return ToDomainList(parcelModels), nil
}

func (r *Repository) scanOne(row pgx.Row) (*ParcelDB, error) {
	var parcelModel ParcelDB
	err := row.Scan(
		&parcelModel.ID,
		&parcelModel.LocationID,
		&parcelModel.TrackingNumber,
		&parcelModel.RecipientName,
		&parcelModel.Weight,
		&parcelModel.StorageLocationID,
		&parcelModel.Notes,
		&parcelModel.Status,
		&parcelModel.PickedUpBy,
		&parcelModel.DeliveredAt,
		&parcelModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &parcelModel, nil
}
