package modify_reservation

import (
	"context"

	"github.com/m04kA/Park-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateSlotAndType(ctx context.Context, id int64, slotID, visitTypeID int64) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	Reserve(ctx context.Context, id int64, count int) (*domain.Slot, error)
	Release(ctx context.Context, id int64, count int) (*domain.Slot, error)
}

// VisitTypeRepository интерфейс репозитория типов визитов
type VisitTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.VisitType, error)
}

// ChangeLogRepository интерфейс журнала изменений броней
type ChangeLogRepository interface {
	Append(ctx context.Context, rec *domain.ChangeRecord) (*domain.ChangeRecord, error)
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
