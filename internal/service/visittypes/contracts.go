package visittypes

import (
	"context"

	"github.com/m04kA/Park-ReservationService/internal/domain"
)

// VisitTypeRepository интерфейс репозитория типов визитов
type VisitTypeRepository interface {
	Create(ctx context.Context, vt *domain.VisitType) (*domain.VisitType, error)
	GetByName(ctx context.Context, name string) (*domain.VisitType, error)
	List(ctx context.Context) ([]*domain.VisitType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
