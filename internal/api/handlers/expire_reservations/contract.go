package expire_reservations

import (
	"context"

	expireReservations "github.com/m04kA/Park-ReservationService/internal/usecase/expire_reservations"
)

type ExpireReservationsUseCase interface {
	Execute(ctx context.Context) (*expireReservations.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
