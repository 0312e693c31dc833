package notifications

import (
	"context"

	"github.com/m04kA/Park-ReservationService/internal/domain"
)

// NotificationRepository интерфейс журнала системных событий
type NotificationRepository interface {
	List(ctx context.Context, category *string) ([]*domain.NotificationEvent, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
