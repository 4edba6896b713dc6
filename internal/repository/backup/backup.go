package backup

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"parceltrack/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetSettings настройки ротации живут единственной строкой, которую
// закладывает миграция.
func (r *Repository) GetSettings(ctx context.Context) (*entities.BackupSettings, error) {
	query := `SELECT api_key_configured, frequency_hours, enabled, last_backup_at
		FROM backup_settings
		WHERE id = 1`

	var settingsModel BackupSettingsDB
	err := r.querier.QueryRow(ctx, query).
		Scan(
			&settingsModel.APIKeyConfigured,
			&settingsModel.FrequencyHours,
			&settingsModel.Enabled,
			&settingsModel.LastBackupAt,
		)
	if err != nil {
		return nil, fmt.Errorf("unexpected backup repository getsettings error: %w", err)
	}

	return ToSettingsDomain(&settingsModel), nil
}

func (r *Repository) UpdateSettings(ctx context.Context, settingsModify entities.BackupSettingsModify) error {
	builder := qb.
		Update("backup_settings")

	// опционнные поля
	if settingsModify.APIKeyConfigured != nil {
		builder = builder.Set("api_key_configured", settingsModify.APIKeyConfigured)
	}
	if settingsModify.FrequencyHours != nil {
		builder = builder.Set("frequency_hours", settingsModify.FrequencyHours)
	}
	if settingsModify.Enabled != nil {
		builder = builder.Set("enabled", settingsModify.Enabled)
	}
	if settingsModify.LastBackupAt != nil {
		builder = builder.Set("last_backup_at", settingsModify.LastBackupAt)
	}

	builder = builder.Where(sq.Eq{"id": 1})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected backup repository updatesettings error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected backup repository updatesettings error: %w", err)
	}

	return nil
}

// ListByLocation возвращает учетные записи старейшими вперед, ротация
// на этот порядок опирается при вытеснении.
func (r *Repository) ListByLocation(ctx context.Context, locationID int64) ([]entities.LocationBackup, error) {
	query := `SELECT id, location_id, bin_id, created_at
		FROM location_backups
		WHERE location_id = $1
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("unexpected backup repository listbylocation error: %w", err)
	}
	defer rows.Close()

	backupModels := make([]LocationBackupDB, 0, entities.MaxBackupsPerLocation)
	for rows.Next() {
		var backupModel LocationBackupDB
		err := rows.Scan(
			&backupModel.ID,
			&backupModel.LocationID,
			&backupModel.BinID,
			&backupModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected backup repository listbylocation error: %w", err)
		}
		backupModels = append(backupModels, backupModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected backup repository listbylocation error: %w", err)
	}

	return ToDomainList(backupModels), nil
}

func (r *Repository) CreateRecord(ctx context.Context, locationID int64, binID string) (int64, error) {
	query := `INSERT INTO location_backups (location_id, bin_id)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(ctx, query, locationID, binID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected backup repository createrecord error: %w", err)
	}

	return id, nil
}

func (r *Repository) DeleteRecord(ctx context.Context, id int64) error {
	query := `DELETE FROM location_backups WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected backup repository deleterecord error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("unexpected backup repository deleterecord error: record %d not found", id)
	}

	return nil
}
