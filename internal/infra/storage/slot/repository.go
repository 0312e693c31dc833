package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	"github.com/m04kA/Park-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Park-ReservationService/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const pqUniqueViolation = "23505"

var slotColumns = []string{
	"id",
	"slot_date",
	"start_time",
	"end_time",
	"capacity_max",
	"capacity_used",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами парка.
// Счётчик capacity_used изменяется только через Reserve и Release —
// единственными атомарными UPDATE, что закрывает окно гонки между
// одновременными бронированиями.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот (административная операция).
// Пара (дата, время начала) уникальна — при дубликате возвращает ErrDuplicateSlot.
func (r *Repository) Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns(
			"slot_date",
			"start_time",
			"end_time",
			"capacity_max",
			"capacity_used",
		).
		Values(
			s.SlotDate,
			s.StartTime,
			s.EndTime,
			s.CapacityMax,
			s.CapacityUsed,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает слот по ID.
// Внутри транзакции блокирует строку (FOR UPDATE), чтобы проверка
// доступности и последующее изменение счётчика были сериализованы.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlotRow(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// List получает все слоты, отсортированные по дате и времени начала
func (r *Repository) List(ctx context.Context) ([]*domain.Slot, error) {
	return r.listWithRange(ctx, nil, nil)
}

// ListByDateRange получает слоты, чья дата попадает в [from, to].
// Обе границы опциональны (nil = без ограничения).
func (r *Repository) ListByDateRange(ctx context.Context, from, to *time.Time) ([]*domain.Slot, error) {
	return r.listWithRange(ctx, from, to)
}

// Reserve атомарно занимает count мест в слоте.
// Проверка вместимости и инкремент выполняются одним условным UPDATE:
// слот никогда не переполняется и не бывает частичного применения.
// Возвращает ErrCapacityExceeded, если мест не хватает.
func (r *Repository) Reserve(ctx context.Context, id int64, count int) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("capacity_used", squirrel.Expr("capacity_used + ?", count)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("capacity_used + ? <= capacity_max", count)).
		Suffix("RETURNING id, slot_date, start_time, end_time, capacity_max, capacity_used, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := r.scanSlotRow(executor.QueryRowContext(ctx, query, args...), "Reserve")
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, ErrSlotNotFound) {
		return nil, err
	}

	// UPDATE не затронул строк: либо слота нет, либо не прошла проверка
	// вместимости. Различаем по наличию слота.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, ErrCapacityExceeded
}

// Release атомарно возвращает count мест слоту.
// Счётчик не может уйти ниже нуля (GREATEST), поэтому повторное
// освобождение не приводит к отрицательной занятости.
func (r *Repository) Release(ctx context.Context, id int64, count int) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("capacity_used", squirrel.Expr("GREATEST(capacity_used - ?, 0)", count)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, slot_date, start_time, end_time, capacity_max, capacity_used, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	return r.scanSlotRow(executor.QueryRowContext(ctx, query, args...), "Release")
}

// listWithRange общая реализация списочных запросов
func (r *Repository) listWithRange(ctx context.Context, from, to *time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		OrderBy("slot_date ASC, start_time ASC")

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"slot_date": *from})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"slot_date": *to})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: listWithRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listWithRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var s domain.Slot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.SlotDate,
			&s.StartTime,
			&s.EndTime,
			&s.CapacityMax,
			&s.CapacityUsed,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: listWithRange - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listWithRange - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// scanSlotRow сканирует один слот из результата запроса
func (r *Repository) scanSlotRow(row *sql.Row, method string) (*domain.Slot, error) {
	var s domain.Slot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.SlotDate,
		&s.StartTime,
		&s.EndTime,
		&s.CapacityMax,
		&s.CapacityUsed,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan slot: %v", ErrScanRow, method, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
