package changelog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	"github.com/m04kA/Park-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Park-ReservationService/pkg/psqlbuilder"
)

// Repository append-only журнал изменений броней.
// Записи никогда не обновляются и не удаляются (кроме каскадного
// удаления вместе с бронью).
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала изменений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись об изменении брони
func (r *Repository) Append(ctx context.Context, rec *domain.ChangeRecord) (*domain.ChangeRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("change_records").
		Columns(
			"reservation_id",
			"actor",
			"description",
		).
		Values(
			rec.ReservationID,
			rec.Actor,
			rec.Description,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rec.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	rec.CreatedAt = createdAt.Time

	return rec, nil
}

// ListByReservation получает историю изменений брони, новые записи первыми
func (r *Repository) ListByReservation(ctx context.Context, reservationID int64) ([]*domain.ChangeRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"reservation_id",
		"actor",
		"description",
		"created_at",
	).
		From("change_records").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.ChangeRecord, 0)
	for rows.Next() {
		var rec domain.ChangeRecord
		var createdAt sql.NullTime

		err := rows.Scan(
			&rec.ID,
			&rec.ReservationID,
			&rec.Actor,
			&rec.Description,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByReservation - scan row: %v", ErrScanRow, err)
		}

		rec.CreatedAt = createdAt.Time
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
