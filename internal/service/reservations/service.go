package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/slot"
	"github.com/m04kA/Park-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с бронями визитов
type Service struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	visitorRepo     VisitorRepository
	visitTypeRepo   VisitTypeRepository
	changeLogRepo   ChangeLogRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	visitorRepo VisitorRepository,
	visitTypeRepo VisitTypeRepository,
	changeLogRepo ChangeLogRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		visitorRepo:     visitorRepo,
		visitTypeRepo:   visitTypeRepo,
		changeLogRepo:   changeLogRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает бронь по ID вместе с данными посетителя,
// сопровождающих, слота, типа визита и журналом изменений
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp, err := s.buildDetail(ctx, reservation)
	if err != nil {
		s.logger.Error("GetByID: failed to build detail for reservation id=%d: %v", id, err)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return resp, nil
}

// List получает список броней с фильтрацией по периоду, статусу и типу визита
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations with filter")

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	// Дополняем каждую бронь основным посетителем и его сопровождающими
	visitors := make(map[int64]*domain.Visitor, len(reservations))
	companions := make(map[int64][]*domain.Companion, len(reservations))
	for _, res := range reservations {
		if _, ok := visitors[res.VisitorID]; ok {
			continue
		}

		visitor, err := s.visitorRepo.GetByID(ctx, res.VisitorID)
		if err != nil {
			s.logger.Error("List: failed to fetch visitor id=%d: %v", res.VisitorID, err)
			return nil, fmt.Errorf("%w: List - failed to fetch visitor: %v", ErrInternal, err)
		}

		visitorCompanions, err := s.visitorRepo.ListCompanions(ctx, res.VisitorID)
		if err != nil {
			s.logger.Error("List: failed to fetch companions for visitor id=%d: %v", res.VisitorID, err)
			return nil, fmt.Errorf("%w: List - failed to fetch companions: %v", ErrInternal, err)
		}

		visitors[res.VisitorID] = visitor
		companions[res.VisitorID] = visitorCompanions
	}

	s.logger.Info("List: found %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations, visitors, companions), nil
}

// Confirm отмечает бронь как использованную (посетитель пришёл в парк).
// Допускается только из статуса active; места остаются занятыми.
func (s *Service) Confirm(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Confirm: confirming reservation id=%d", id)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}

		if !reservation.CanBeConfirmed() {
			s.logger.Warn("Confirm: reservation id=%d in status=%s cannot be confirmed", id, reservation.Status)
			return fmt.Errorf("%w: reservation in status %s", ErrInvalidTransition, reservation.Status)
		}

		if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusUsed); err != nil {
			return fmt.Errorf("%w: Confirm - failed to update status: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrReservationNotFound) && !errors.Is(err, ErrInvalidTransition) {
			s.logger.Error("Confirm: transaction failed for reservation id=%d: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("Confirm: reservation id=%d marked as used", id)
	return s.GetByID(ctx, id)
}

// Cancel отменяет бронь и возвращает занятые места в слот.
// Допускается только из статуса active.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !reservation.CanBeCancelled() {
			s.logger.Warn("Cancel: reservation id=%d in status=%s cannot be cancelled", id, reservation.Status)
			return fmt.Errorf("%w: reservation in status %s", ErrInvalidTransition, reservation.Status)
		}

		// Возвращаем места в слот до смены статуса
		if _, err := s.slotRepo.Release(ctx, reservation.SlotID, reservation.VisitorCount); err != nil {
			if !errors.Is(err, slotRepo.ErrSlotNotFound) {
				return fmt.Errorf("%w: Cancel - failed to release slot capacity: %v", ErrInternal, err)
			}
			s.logger.Warn("Cancel: slot id=%d for reservation id=%d no longer exists", reservation.SlotID, id)
		}

		if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
			return fmt.Errorf("%w: Cancel - failed to update status: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrReservationNotFound) && !errors.Is(err, ErrInvalidTransition) {
			s.logger.Error("Cancel: transaction failed for reservation id=%d: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("Cancel: reservation id=%d cancelled, capacity released", id)
	return s.GetByID(ctx, id)
}

// buildDetail собирает полный ответ по брони из связанных сущностей
func (s *Service) buildDetail(ctx context.Context, reservation *domain.Reservation) (*models.ReservationResponse, error) {
	visitor, err := s.visitorRepo.GetByID(ctx, reservation.VisitorID)
	if err != nil {
		return nil, fmt.Errorf("%w: buildDetail - failed to fetch visitor: %v", ErrInternal, err)
	}

	companions, err := s.visitorRepo.ListCompanions(ctx, reservation.VisitorID)
	if err != nil {
		return nil, fmt.Errorf("%w: buildDetail - failed to fetch companions: %v", ErrInternal, err)
	}

	slot, err := s.slotRepo.GetByID(ctx, reservation.SlotID)
	if err != nil {
		return nil, fmt.Errorf("%w: buildDetail - failed to fetch slot: %v", ErrInternal, err)
	}

	visitType, err := s.visitTypeRepo.GetByID(ctx, reservation.VisitTypeID)
	if err != nil {
		return nil, fmt.Errorf("%w: buildDetail - failed to fetch visit type: %v", ErrInternal, err)
	}

	changes, err := s.changeLogRepo.ListByReservation(ctx, reservation.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: buildDetail - failed to fetch change history: %v", ErrInternal, err)
	}

	resp := &models.ReservationResponse{
		ID:            reservation.ID,
		SlotID:        reservation.SlotID,
		VisitTypeID:   reservation.VisitTypeID,
		VisitorCount:  reservation.VisitorCount,
		Status:        string(reservation.Status),
		SlotDate:      slot.SlotDate.Format(domain.DateFormat),
		SlotStartTime: slot.StartTime.String(),
		SlotEndTime:   slot.EndTime.String(),
		VisitTypeName: visitType.Name,
		Visitor: models.VisitorResponse{
			ID:         visitor.ID,
			NationalID: visitor.NationalID,
			Name:       visitor.Name,
			Surname:    visitor.Surname,
			Phone:      visitor.Phone,
			Email:      visitor.Email,
			Age:        visitor.Age,
		},
		Companions: make([]models.CompanionResponse, 0, len(companions)),
		Changes:    make([]models.ChangeRecordResponse, 0, len(changes)),
		CreatedAt:  reservation.CreatedAt,
		UpdatedAt:  reservation.UpdatedAt,
	}

	for _, c := range companions {
		resp.Companions = append(resp.Companions, models.CompanionResponse{
			NationalID: c.NationalID,
			Name:       c.Name,
			Age:        c.Age,
		})
	}

	for _, ch := range changes {
		resp.Changes = append(resp.Changes, models.ChangeRecordResponse{
			Actor:       ch.Actor,
			Description: ch.Description,
			CreatedAt:   ch.CreatedAt,
		})
	}

	return resp, nil
}
