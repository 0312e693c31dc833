package reservations

import (
	"context"

	"github.com/m04kA/Park-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	Release(ctx context.Context, id int64, count int) (*domain.Slot, error)
}

// VisitorRepository интерфейс репозитория посетителей
type VisitorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Visitor, error)
	ListCompanions(ctx context.Context, visitorID int64) ([]*domain.Companion, error)
}

// VisitTypeRepository интерфейс репозитория типов визитов
type VisitTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.VisitType, error)
}

// ChangeLogRepository интерфейс журнала изменений броней
type ChangeLogRepository interface {
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.ChangeRecord, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
