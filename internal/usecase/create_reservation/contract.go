package create_reservation

import (
	"context"

	"github.com/m04kA/Park-ReservationService/internal/domain"
)

// VisitorRepository интерфейс репозитория посетителей
type VisitorRepository interface {
	Upsert(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error)
	CreateCompanion(ctx context.Context, c *domain.Companion) (*domain.Companion, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Reserve(ctx context.Context, id int64, count int) (*domain.Slot, error)
}

// VisitTypeRepository интерфейс репозитория типов визитов
type VisitTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.VisitType, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// NotificationRepository интерфейс журнала системных событий
type NotificationRepository interface {
	Append(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
