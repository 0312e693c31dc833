package visitor

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	"github.com/m04kA/Park-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Park-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с посетителями и их сопровождающими.
// Идентичность посетителя — суррогатный id; национальный идентификатор (RUT)
// является уникальным атрибутом и ключом upsert, но не ключом связей.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория посетителей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает посетителя или обновляет его контактные данные,
// если посетитель с таким национальным идентификатором уже есть
func (r *Repository) Upsert(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("visitors").
		Columns(
			"national_id",
			"name",
			"surname",
			"phone",
			"email",
			"age",
		).
		Values(
			v.NationalID,
			v.Name,
			v.Surname,
			v.Phone,
			v.Email,
			v.Age,
		).
		Suffix(`ON CONFLICT (national_id) DO UPDATE SET
			name = EXCLUDED.name,
			surname = EXCLUDED.surname,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			age = EXCLUDED.age,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// GetByID получает посетителя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Visitor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"national_id",
		"name",
		"surname",
		"phone",
		"email",
		"age",
		"created_at",
		"updated_at",
	).
		From("visitors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Visitor
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.NationalID,
		&v.Name,
		&v.Surname,
		&v.Phone,
		&v.Email,
		&v.Age,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVisitorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan visitor: %v", ErrScanRow, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}

// CreateCompanion добавляет сопровождающего к посетителю
func (r *Repository) CreateCompanion(ctx context.Context, c *domain.Companion) (*domain.Companion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("companions").
		Columns(
			"visitor_id",
			"national_id",
			"name",
			"age",
		).
		Values(
			c.VisitorID,
			c.NationalID,
			c.Name,
			c.Age,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCompanion - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCompanion - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time

	return c, nil
}

// ListCompanions получает сопровождающих посетителя
func (r *Repository) ListCompanions(ctx context.Context, visitorID int64) ([]*domain.Companion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"visitor_id",
		"national_id",
		"name",
		"age",
		"created_at",
	).
		From("companions").
		Where(squirrel.Eq{"visitor_id": visitorID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCompanions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCompanions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	companions := make([]*domain.Companion, 0)
	for rows.Next() {
		var c domain.Companion
		var createdAt sql.NullTime

		err := rows.Scan(
			&c.ID,
			&c.VisitorID,
			&c.NationalID,
			&c.Name,
			&c.Age,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCompanions - scan row: %v", ErrScanRow, err)
		}

		c.CreatedAt = createdAt.Time
		companions = append(companions, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCompanions - rows error: %v", ErrScanRow, err)
	}

	return companions, nil
}
