package expire_reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	"github.com/m04kA/Park-ReservationService/pkg/ptr"
)

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("expire_reservations: internal error")
)

// Response результат прогона: количество просроченных броней
type Response struct {
	Expired int
}

// UseCase use case для просрочки активных броней на прошедшие даты.
// Активная бронь, чей слот остался в прошлом, переводится в expired,
// а её места возвращаются слоту — инвариант вместимости сохраняется
// и для просроченного состояния.
type UseCase struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider заменяет провайдер времени (используется в тестах)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute просрочивает активные брони на даты раньше сегодняшней
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	// Вчерашняя дата: фильтр по дате слота включительный
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)

	uc.logger.Info("ExpireReservations: expiring active reservations up to %s", cutoff.Format(domain.DateFormat))

	expired := 0

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		status := domain.StatusActive
		reservations, err := uc.reservationRepo.ListWithFilter(txCtx, domain.ReservationFilter{
			DateTo: ptr.Ptr(cutoff),
			Status: &status,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		for _, res := range reservations {
			if !res.Status.CanTransitionTo(domain.StatusExpired) {
				continue
			}

			if _, err := uc.slotRepo.Release(txCtx, res.SlotID, res.VisitorCount); err != nil {
				return fmt.Errorf("%w: failed to release slot id=%d: %v", ErrInternal, res.SlotID, err)
			}

			if err := uc.reservationRepo.UpdateStatus(txCtx, res.ID, domain.StatusExpired); err != nil {
				return fmt.Errorf("%w: failed to expire reservation id=%d: %v", ErrInternal, res.ID, err)
			}

			expired++
		}

		return nil
	})

	if err != nil {
		uc.logger.Error("ExpireReservations: %v", err)
		return nil, err
	}

	uc.logger.Info("ExpireReservations: expired %d reservation(s)", expired)

	return &Response{Expired: expired}, nil
}
