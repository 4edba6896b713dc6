package ticket

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parceltrack/internal/entities"
	"parceltrack/internal/repository"
	"parceltrack/internal/service/ticket"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const ticketColumns = `id, location_id, subject, body, status, export_bin_id, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, locationID int64, subject, body string) (int64, error) {
	query := `INSERT INTO tickets (location_id, subject, body)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(ctx, query, locationID, subject, body).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, ticket.ErrLocationNotFound
		}
		return 0, fmt.Errorf("unexpected ticket repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
		FROM tickets
		WHERE id = $1`

	var ticketModel TicketDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&ticketModel.ID,
			&ticketModel.LocationID,
			&ticketModel.Subject,
			&ticketModel.Body,
			&ticketModel.Status,
			&ticketModel.ExportBinID,
			&ticketModel.CreatedAt,
			&ticketModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ticket.ErrTicketNotFound
		}

		return nil, fmt.Errorf("unexpected ticket repository getbyid error: %w", err)
	}

	return ToDomain(&ticketModel), nil
}

func (r *Repository) GetByLocation(ctx context.Context, locationID int64) ([]entities.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
		FROM tickets
		WHERE location_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository getbylocation error: %w", err)
	}
	defer rows.Close()

	ticketModels := make([]TicketDB, 0, 8)
	for rows.Next() {
		var ticketModel TicketDB
		err := rows.Scan(
			&ticketModel.ID,
			&ticketModel.LocationID,
			&ticketModel.Subject,
			&ticketModel.Body,
			&ticketModel.Status,
			&ticketModel.ExportBinID,
			&ticketModel.CreatedAt,
			&ticketModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected ticket repository getbylocation error: %w", err)
		}
		ticketModels = append(ticketModels, ticketModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository getbylocation error: %w", err)
	}

	return ToDomainList(ticketModels), nil
}

func (r *Repository) Update(ctx context.Context, ticketModifyEntity entities.TicketModify) (*entities.Ticket, error) {
	builder := qb.
		Update("tickets")

	// опционнные поля
	if ticketModifyEntity.Status != nil {
		builder = builder.Set("status", ticketModifyEntity.Status.String())
	}
	if ticketModifyEntity.ExportBinID != nil {
		builder = builder.Set("export_bin_id", ticketModifyEntity.ExportBinID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": ticketModifyEntity.ID}).
		Suffix("RETURNING " + ticketColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository update error: %w", err)
	}

	var ticketModel TicketDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&ticketModel.ID,
			&ticketModel.LocationID,
			&ticketModel.Subject,
			&ticketModel.Body,
			&ticketModel.Status,
			&ticketModel.ExportBinID,
			&ticketModel.CreatedAt,
			&ticketModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ticket.ErrTicketNotFound
		}

		return nil, fmt.Errorf("unexpected ticket repository update error: %w", err)
	}

	return ToDomain(&ticketModel), nil
}
