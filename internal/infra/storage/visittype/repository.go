package visittype

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	"github.com/m04kA/Park-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Park-ReservationService/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const pqUniqueViolation = "23505"

// Repository репозиторий для работы с типами визитов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов визитов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый тип визита (административная операция)
func (r *Repository) Create(ctx context.Context, vt *domain.VisitType) (*domain.VisitType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("visit_types").
		Columns("name", "description").
		Values(vt.Name, vt.Description).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&vt.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicateVisitType
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	vt.CreatedAt = createdAt.Time

	return vt, nil
}

// GetByID получает тип визита по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.VisitType, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByName получает тип визита по уникальному названию
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.VisitType, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name})
}

// List получает все типы визитов, отсортированные по названию
func (r *Repository) List(ctx context.Context) ([]*domain.VisitType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "description", "created_at").
		From("visit_types").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	visitTypes := make([]*domain.VisitType, 0)
	for rows.Next() {
		var vt domain.VisitType
		var createdAt sql.NullTime

		if err := rows.Scan(&vt.ID, &vt.Name, &vt.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		vt.CreatedAt = createdAt.Time
		visitTypes = append(visitTypes, &vt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return visitTypes, nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.VisitType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "description", "created_at").
		From("visit_types").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var vt domain.VisitType
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&vt.ID, &vt.Name, &vt.Description, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrVisitTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan visit type: %v", ErrScanRow, err)
	}

	vt.CreatedAt = createdAt.Time

	return &vt, nil
}
