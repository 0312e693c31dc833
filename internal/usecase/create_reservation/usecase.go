package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	slotRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/slot"
	visitTypeRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/visittype"
)

// UseCase use case для создания брони на посещение парка
type UseCase struct {
	visitorRepo      VisitorRepository
	slotRepo         SlotRepository
	visitTypeRepo    VisitTypeRepository
	reservationRepo  ReservationRepository
	notificationRepo NotificationRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	visitorRepo VisitorRepository,
	slotRepo SlotRepository,
	visitTypeRepo VisitTypeRepository,
	reservationRepo ReservationRepository,
	notificationRepo NotificationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		visitorRepo:      visitorRepo,
		slotRepo:         slotRepo,
		visitTypeRepo:    visitTypeRepo,
		reservationRepo:  reservationRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case создания брони.
// Вся операция — upsert посетителя, сопровождающие, резервирование мест
// и вставка брони — выполняется в одной сериализуемой транзакции:
// при любой ошибке не остается ни осиротевших записей посетителя, ни
// занятых мест в слоте.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: national_id=%s, slot=%d, visit_type=%d, companions=%d",
		req.NationalID, req.SlotID, req.VisitTypeID, len(req.Companions))

	// 1. Валидация входных данных до каких-либо мутаций
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	visitorCount := 1 + len(req.Companions)

	var (
		result    *domain.Reservation
		slot      *domain.Slot
		visitType *domain.VisitType
	)

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Создаем или обновляем посетителя по национальному идентификатору
		visitor, err := uc.visitorRepo.Upsert(txCtx, &domain.Visitor{
			NationalID: req.NationalID,
			Name:       req.Name,
			Surname:    req.Surname,
			Phone:      req.Phone,
			Email:      req.Email,
			Age:        req.Age,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to upsert visitor: %v", err)
			return fmt.Errorf("%w: failed to upsert visitor: %v", ErrInternal, err)
		}

		// 2.2. Создаем сопровождающих
		for _, companion := range req.Companions {
			if _, err := uc.visitorRepo.CreateCompanion(txCtx, &domain.Companion{
				VisitorID:  visitor.ID,
				NationalID: companion.NationalID,
				Name:       companion.Name,
				Age:        companion.Age,
			}); err != nil {
				uc.logger.Error("CreateReservation: failed to create companion: %v", err)
				return fmt.Errorf("%w: failed to create companion: %v", ErrInternal, err)
			}
		}

		// 2.3. Проверяем тип визита
		visitType, err = uc.visitTypeRepo.GetByID(txCtx, req.VisitTypeID)
		if err != nil {
			if errors.Is(err, visitTypeRepo.ErrVisitTypeNotFound) {
				uc.logger.Warn("CreateReservation: visit type id=%d not found", req.VisitTypeID)
				return ErrVisitTypeNotFound
			}
			uc.logger.Error("CreateReservation: failed to get visit type id=%d: %v", req.VisitTypeID, err)
			return fmt.Errorf("%w: failed to get visit type: %v", ErrInternal, err)
		}

		// 2.4. Атомарно резервируем места в слоте.
		// Проверка вместимости и инкремент счётчика — один условный UPDATE,
		// при нехватке мест вся транзакция откатывается.
		slot, err = uc.slotRepo.Reserve(txCtx, req.SlotID, visitorCount)
		if err != nil {
			switch {
			case errors.Is(err, slotRepo.ErrSlotNotFound):
				uc.logger.Warn("CreateReservation: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			case errors.Is(err, slotRepo.ErrCapacityExceeded):
				uc.logger.Warn("CreateReservation: slot id=%d cannot fit %d visitors", req.SlotID, visitorCount)
				return ErrCapacityExceeded
			default:
				uc.logger.Error("CreateReservation: failed to reserve slot id=%d: %v", req.SlotID, err)
				return fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
			}
		}

		// 2.5. Создаем бронь
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			VisitorID:    visitor.ID,
			SlotID:       slot.ID,
			VisitTypeID:  visitType.ID,
			VisitorCount: visitorCount,
			Status:       domain.StatusActive,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 2.6. Фиксируем событие создания
		message := fmt.Sprintf("Reservation %d created: %d visitor(s), slot %s, visit type %q",
			created.ID, visitorCount, slot.Label(), visitType.Name)
		if _, err := uc.notificationRepo.Append(txCtx, &domain.NotificationEvent{
			Category: domain.CategoryReservationCreated,
			Message:  message,
		}); err != nil {
			uc.logger.Error("CreateReservation: failed to append notification: %v", err)
			return fmt.Errorf("%w: failed to append notification: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d (%d/%d spots taken in slot %d)",
		result.ID, slot.CapacityUsed, slot.CapacityMax, slot.ID)

	return &Response{
		ID:            result.ID,
		VisitorID:     result.VisitorID,
		SlotID:        result.SlotID,
		VisitTypeID:   result.VisitTypeID,
		VisitorCount:  result.VisitorCount,
		Status:        string(result.Status),
		SlotDate:      slot.SlotDate,
		SlotStartTime: slot.StartTime,
		SlotEndTime:   slot.EndTime,
		VisitTypeName: visitType.Name,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
