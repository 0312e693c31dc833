package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	slotRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/slot"
	"github.com/m04kA/Park-ReservationService/internal/service/slots/models"
)

// Service сервис для работы со слотами посещений
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Create создает новый слот посещений
// Пара (дата, время начала) должна быть уникальна
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Create: creating slot date=%s start=%s", req.SlotDate, req.StartTime)

	slot, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid slot data: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateSlot(slot); err != nil {
		s.logger.Warn("Create: slot validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		if errors.Is(err, slotRepo.ErrDuplicateSlot) {
			s.logger.Warn("Create: slot date=%s start=%s already exists", req.SlotDate, req.StartTime)
			return nil, ErrDuplicateSlot
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: slot id=%d created", created.ID)
	return models.FromDomainSlot(created), nil
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// List получает слоты за период, опционально только со свободными местами
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	s.logger.Info("List: fetching slots from=%v to=%v onlyAvailable=%v", req.DateFrom, req.DateTo, req.OnlyAvailable)

	slots, err := s.slotRepo.ListByDateRange(ctx, req.DateFrom, req.DateTo)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if req.OnlyAvailable {
		filtered := make([]*domain.Slot, 0, len(slots))
		for _, slot := range slots {
			if !slot.IsFull() {
				filtered = append(filtered, slot)
			}
		}
		slots = filtered
	}

	s.logger.Info("List: found %d slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}

// validateSlot проверяет бизнес-правила слота
func validateSlot(slot *domain.Slot) error {
	if slot.SlotDate.IsZero() {
		return errors.New("slot date is required")
	}
	if err := slot.StartTime.Validate(); err != nil {
		return fmt.Errorf("invalid start time: %v", err)
	}
	if err := slot.EndTime.Validate(); err != nil {
		return fmt.Errorf("invalid end time: %v", err)
	}
	if !slot.StartTime.IsBefore(slot.EndTime) {
		return errors.New("start time must be before end time")
	}
	if slot.CapacityMax < domain.MinCapacityMax || slot.CapacityMax > domain.MaxCapacityMax {
		return fmt.Errorf("capacity must be between %d and %d", domain.MinCapacityMax, domain.MaxCapacityMax)
	}
	return nil
}
