package occupancy_report

import (
	"context"
	"time"

	"github.com/m04kA/Park-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	ListWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListByDateRange(ctx context.Context, from, to *time.Time) ([]*domain.Slot, error)
}

// NotificationRepository интерфейс журнала системных событий
type NotificationRepository interface {
	Append(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
