package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	"github.com/m04kA/Park-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Park-ReservationService/pkg/psqlbuilder"
)

// Repository append-only журнал системных событий.
// Доставка уведомлений внешняя — сервис только фиксирует события.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет событие; дата отправки назначается сервером
func (r *Repository) Append(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notification_events").
		Columns("category", "message").
		Values(event.Category, event.Message).
		Suffix("RETURNING id, sent_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var sentAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&event.ID, &sentAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	event.SentAt = sentAt.Time

	return event, nil
}

// List получает события, опционально фильтруя по категории, новые первыми
func (r *Repository) List(ctx context.Context, category *string) ([]*domain.NotificationEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "category", "message", "sent_at").
		From("notification_events").
		OrderBy("sent_at DESC, id DESC")

	if category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *category})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.NotificationEvent, 0)
	for rows.Next() {
		var event domain.NotificationEvent
		var sentAt sql.NullTime

		if err := rows.Scan(&event.ID, &event.Category, &event.Message, &sentAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		event.SentAt = sentAt.Time
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}
