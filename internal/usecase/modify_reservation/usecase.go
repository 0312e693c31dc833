package modify_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/slot"
	visitTypeRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/visittype"
)

// UseCase use case для изменения брони (перенос на другой слот и/или тип визита)
type UseCase struct {
	reservationRepo  ReservationRepository
	slotRepo         SlotRepository
	visitTypeRepo    VisitTypeRepository
	changeLogRepo    ChangeLogRepository
	notificationRepo NotificationRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	visitTypeRepo VisitTypeRepository,
	changeLogRepo ChangeLogRepository,
	notificationRepo NotificationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		slotRepo:         slotRepo,
		visitTypeRepo:    visitTypeRepo,
		changeLogRepo:    changeLogRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case изменения брони.
// Порядок шагов строгий: освобождаем места в старом слоте, проверяем
// доступность целевого, и либо занимаем места в нём, либо выполняем
// компенсирующее повторное резервирование старого слота и отклоняем
// операцию. Вся последовательность — одна сериализуемая транзакция.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ModifyReservation: id=%d, new_slot=%d, new_visit_type=%d, actor=%s",
		req.ReservationID, req.NewSlotID, req.NewVisitTypeID, req.Actor)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ModifyReservation: validation failed: %v", err)
		return nil, err
	}

	var (
		result    *domain.Reservation
		newSlot   *domain.Slot
		visitType *domain.VisitType
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Фиксируем старое состояние брони (строка блокируется FOR UPDATE)
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("ModifyReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("ModifyReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		if !res.CanBeModified() {
			uc.logger.Warn("ModifyReservation: reservation id=%d is not modifiable, status=%s",
				res.ID, res.Status)
			return ErrInvalidTransition
		}

		oldSlotID := res.SlotID
		oldVisitTypeID := res.VisitTypeID
		count := res.VisitorCount

		oldSlot, err := uc.slotRepo.GetByID(txCtx, oldSlotID)
		if err != nil {
			uc.logger.Error("ModifyReservation: failed to get current slot id=%d: %v", oldSlotID, err)
			return fmt.Errorf("%w: failed to get current slot: %v", ErrInternal, err)
		}

		oldVisitType, err := uc.visitTypeRepo.GetByID(txCtx, oldVisitTypeID)
		if err != nil {
			uc.logger.Error("ModifyReservation: failed to get current visit type id=%d: %v", oldVisitTypeID, err)
			return fmt.Errorf("%w: failed to get current visit type: %v", ErrInternal, err)
		}

		// 2. Проверяем целевой тип визита
		visitType, err = uc.visitTypeRepo.GetByID(txCtx, req.NewVisitTypeID)
		if err != nil {
			if errors.Is(err, visitTypeRepo.ErrVisitTypeNotFound) {
				uc.logger.Warn("ModifyReservation: visit type id=%d not found", req.NewVisitTypeID)
				return ErrVisitTypeNotFound
			}
			uc.logger.Error("ModifyReservation: failed to get visit type id=%d: %v", req.NewVisitTypeID, err)
			return fmt.Errorf("%w: failed to get visit type: %v", ErrInternal, err)
		}

		// 3. Освобождаем места в старом слоте
		if _, err := uc.slotRepo.Release(txCtx, oldSlotID, count); err != nil {
			uc.logger.Error("ModifyReservation: failed to release slot id=%d: %v", oldSlotID, err)
			return fmt.Errorf("%w: failed to release current slot: %v", ErrInternal, err)
		}

		// 4. Проверяем доступность целевого слота (строка блокируется FOR UPDATE)
		target, err := uc.slotRepo.GetByID(txCtx, req.NewSlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("ModifyReservation: target slot id=%d not found", req.NewSlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("ModifyReservation: failed to get target slot id=%d: %v", req.NewSlotID, err)
			return fmt.Errorf("%w: failed to get target slot: %v", ErrInternal, err)
		}

		if target.Available() < count {
			// Компенсирующее действие: возвращаем места старому слоту
			// и отклоняем операцию, бронь остается без изменений
			if _, err := uc.slotRepo.Reserve(txCtx, oldSlotID, count); err != nil {
				uc.logger.Error("ModifyReservation: compensating re-reserve of slot id=%d failed: %v", oldSlotID, err)
				return fmt.Errorf("%w: compensating re-reserve failed: %v", ErrInternal, err)
			}
			uc.logger.Warn("ModifyReservation: target slot id=%d cannot fit %d visitors (%d available)",
				req.NewSlotID, count, target.Available())
			return ErrCapacityExceeded
		}

		// 5. Занимаем места в целевом слоте
		newSlot, err = uc.slotRepo.Reserve(txCtx, req.NewSlotID, count)
		if err != nil {
			uc.logger.Error("ModifyReservation: failed to reserve target slot id=%d: %v", req.NewSlotID, err)
			return fmt.Errorf("%w: failed to reserve target slot: %v", ErrInternal, err)
		}

		// 6. Переносим бронь
		if err := uc.reservationRepo.UpdateSlotAndType(txCtx, res.ID, newSlot.ID, visitType.ID); err != nil {
			uc.logger.Error("ModifyReservation: failed to update reservation id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		// 7. Записываем изменение в журнал
		description := buildChangeDescription(oldSlot, newSlot, oldVisitType, visitType, count)
		if _, err := uc.changeLogRepo.Append(txCtx, &domain.ChangeRecord{
			ReservationID: res.ID,
			Actor:         req.Actor,
			Description:   description,
		}); err != nil {
			uc.logger.Error("ModifyReservation: failed to append change record: %v", err)
			return fmt.Errorf("%w: failed to append change record: %v", ErrInternal, err)
		}

		// 8. Фиксируем событие изменения
		message := fmt.Sprintf("Reservation %d modified by %s: %s", res.ID, req.Actor, description)
		if _, err := uc.notificationRepo.Append(txCtx, &domain.NotificationEvent{
			Category: domain.CategoryReservationModified,
			Message:  message,
		}); err != nil {
			uc.logger.Error("ModifyReservation: failed to append notification: %v", err)
			return fmt.Errorf("%w: failed to append notification: %v", ErrInternal, err)
		}

		res.SlotID = newSlot.ID
		res.VisitTypeID = visitType.ID
		result = res
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ModifyReservation: successfully moved reservation id=%d to slot id=%d", result.ID, newSlot.ID)

	return &Response{
		ID:            result.ID,
		VisitorID:     result.VisitorID,
		SlotID:        result.SlotID,
		VisitTypeID:   result.VisitTypeID,
		VisitorCount:  result.VisitorCount,
		Status:        string(result.Status),
		SlotDate:      newSlot.SlotDate,
		SlotStartTime: newSlot.StartTime,
		SlotEndTime:   newSlot.EndTime,
		VisitTypeName: visitType.Name,
		UpdatedAt:     time.Now(),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationId must be positive", ErrInvalidInput)
	}
	if req.NewSlotID <= 0 {
		return fmt.Errorf("%w: newSlotId must be positive", ErrInvalidInput)
	}
	if req.NewVisitTypeID <= 0 {
		return fmt.Errorf("%w: newVisitTypeId must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Actor) == "" {
		return fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}
	return nil
}

// buildChangeDescription составляет человекочитаемое описание изменения.
// Упоминает старый и новый слот, тип визита и количество посетителей.
func buildChangeDescription(oldSlot, newSlot *domain.Slot, oldType, newType *domain.VisitType, count int) string {
	parts := make([]string, 0, 3)

	if oldSlot.ID != newSlot.ID {
		parts = append(parts, fmt.Sprintf("slot %s -> %s", oldSlot.Label(), newSlot.Label()))
	} else {
		parts = append(parts, fmt.Sprintf("slot %s unchanged", oldSlot.Label()))
	}

	if oldType.ID != newType.ID {
		parts = append(parts, fmt.Sprintf("visit type %q -> %q", oldType.Name, newType.Name))
	} else {
		parts = append(parts, fmt.Sprintf("visit type %q unchanged", oldType.Name))
	}

	parts = append(parts, fmt.Sprintf("%d visitor(s)", count))

	return strings.Join(parts, "; ")
}
