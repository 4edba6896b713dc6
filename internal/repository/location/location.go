package location

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parceltrack/internal/entities"
	"parceltrack/internal/repository"
	"parceltrack/internal/service/location"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const locationColumns = `id, name, pricing_enabled, pricing_type, per_pound_rate, is_suspended, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, locationModifyEntity entities.LocationModify) (int64, error) {
	locationModifyModel := FromDomainModify(&locationModifyEntity)
	query := `INSERT INTO locations (name, pricing_enabled, pricing_type, per_pound_rate)
		VALUES ($1, COALESCE($2, FALSE), COALESCE($3, 'per_pound'), $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		locationModifyModel.Name,
		locationModifyModel.PricingEnabled,
		locationModifyModel.PricingType,
		locationModifyModel.PerPoundRate,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, location.ErrConflict
		}
		return 0, fmt.Errorf("unexpected location repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, locationModifyEntity entities.LocationModify) (*entities.Location, error) {
	locationModifyModel := FromDomainModify(&locationModifyEntity)

	builder := qb.
		Update("locations")

	// опционнные поля
	if locationModifyModel.Name != nil {
		builder = builder.Set("name", locationModifyModel.Name)
	}
	if locationModifyModel.PricingEnabled != nil {
		builder = builder.Set("pricing_enabled", locationModifyModel.PricingEnabled)
	}
	if locationModifyModel.PricingType != nil {
		builder = builder.Set("pricing_type", locationModifyModel.PricingType)
	}
	if locationModifyModel.PerPoundRate != nil {
		builder = builder.Set("per_pound_rate", locationModifyModel.PerPoundRate)
	}
	if locationModifyModel.IsSuspended != nil {
		builder = builder.Set("is_suspended", locationModifyModel.IsSuspended)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": locationModifyModel.ID}).
		Suffix("RETURNING " + locationColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository update error: %w", err)
	}

	var locationModel LocationDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&locationModel.ID,
			&locationModel.Name,
			&locationModel.PricingEnabled,
			&locationModel.PricingType,
			&locationModel.PerPoundRate,
			&locationModel.IsSuspended,
			&locationModel.CreatedAt,
			&locationModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, location.ErrLocationNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, location.ErrConflict
		}

		return nil, fmt.Errorf("unexpected location repository update error: %w", err)
	}

	return ToDomain(&locationModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Location, error) {
	query := `SELECT ` + locationColumns + `
		FROM locations
		WHERE id = $1`

	var locationModel LocationDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&locationModel.ID,
			&locationModel.Name,
			&locationModel.PricingEnabled,
			&locationModel.PricingType,
			&locationModel.PerPoundRate,
			&locationModel.IsSuspended,
			&locationModel.CreatedAt,
			&locationModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, location.ErrLocationNotFound
		}

		return nil, fmt.Errorf("unexpected location repository getbyid error: %w", err)
	}

	return ToDomain(&locationModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Location, error) {
	query := `
	SELECT ` + locationColumns + `
	FROM locations
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository getall error: %w", err)
	}
	defer rows.Close()

	locationModels := make([]LocationDB, 0, 8)
	for rows.Next() {
		var locationModel LocationDB
		err := rows.Scan(
			&locationModel.ID,
			&locationModel.Name,
			&locationModel.PricingEnabled,
			&locationModel.PricingType,
			&locationModel.PerPoundRate,
			&locationModel.IsSuspended,
			&locationModel.CreatedAt,
			&locationModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected location repository getall error: %w", err)
		}
		locationModels = append(locationModels, locationModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository getall error: %w", err)
	}

	return ToDomainList(locationModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM locations WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected location repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return location.ErrLocationNotFound
	}

	return nil
}

func (r *Repository) CreateStorageLocation(ctx context.Context, locationID int64, name string) (int64, error) {
	query := `INSERT INTO storage_locations (location_id, name)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(ctx, query, locationID, name).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, location.ErrLocationNotFound
		}
		return 0, fmt.Errorf("unexpected location repository createstoragelocation error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetStorageLocations(ctx context.Context, locationID int64) ([]entities.StorageLocation, error) {
	query := `SELECT id, location_id, name
		FROM storage_locations
		WHERE location_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository getstoragelocations error: %w", err)
	}
	defer rows.Close()

	storageLocationModels := make([]StorageLocationDB, 0, 8)
	for rows.Next() {
		var storageLocationModel StorageLocationDB
		err := rows.Scan(
			&storageLocationModel.ID,
			&storageLocationModel.LocationID,
			&storageLocationModel.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected location repository getstoragelocations error: %w", err)
		}
		storageLocationModels = append(storageLocationModels, storageLocationModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository getstoragelocations error: %w", err)
	}

	return ToStorageLocationDomainList(storageLocationModels), nil
}

func (r *Repository) DeleteStorageLocation(ctx context.Context, id int64) error {
	query := `DELETE FROM storage_locations WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected location repository deletestoragelocation error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return location.ErrStorageLocationNotFound
	}

	return nil
}

// ReplacePricingTiers заменяет весь набор диапазонов локации. Порядок
// вставки сохраняется возрастающими id, подбор цены на него опирается.
func (r *Repository) ReplacePricingTiers(ctx context.Context, locationID int64, tiers []entities.PricingTier) error {
	_, err := r.querier.Exec(ctx, `DELETE FROM pricing_tiers WHERE location_id = $1`, locationID)
	if err != nil {
		return fmt.Errorf("unexpected location repository replacepricingtiers error: %w", err)
	}

	for _, tier := range tiers {
		_, err := r.querier.Exec(
			ctx,
			`INSERT INTO pricing_tiers (location_id, min_weight, max_weight, price) VALUES ($1, $2, $3, $4)`,
			locationID,
			tier.MinWeight,
			tier.MaxWeight,
			tier.Price,
		)
		if err != nil {
			if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
				return location.ErrLocationNotFound
			}
			return fmt.Errorf("unexpected location repository replacepricingtiers error: %w", err)
		}
	}

	return nil
}

func (r *Repository) GetPricingTiers(ctx context.Context, locationID int64) ([]entities.PricingTier, error) {
	query := `SELECT id, location_id, min_weight, max_weight, price
		FROM pricing_tiers
		WHERE location_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository getpricingtiers error: %w", err)
	}
	defer rows.Close()

	tierModels := make([]PricingTierDB, 0, 8)
	for rows.Next() {
		var tierModel PricingTierDB
		err := rows.Scan(
			&tierModel.ID,
			&tierModel.LocationID,
			&tierModel.MinWeight,
			&tierModel.MaxWeight,
			&tierModel.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected location repository getpricingtiers error: %w", err)
		}
		tierModels = append(tierModels, tierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository getpricingtiers error: %w", err)
	}

	return ToPricingTierDomainList(tierModels), nil
}
