package visittypes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	visitTypeRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/visittype"
	"github.com/m04kA/Park-ReservationService/internal/service/visittypes/models"
)

// Service сервис для работы с типами визитов
type Service struct {
	visitTypeRepo VisitTypeRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса типов визитов
func NewService(visitTypeRepo VisitTypeRepository, logger Logger) *Service {
	return &Service{
		visitTypeRepo: visitTypeRepo,
		logger:        logger,
	}
}

// Create создает новый тип визита с уникальным названием
func (s *Service) Create(ctx context.Context, req *models.CreateVisitTypeRequest) (*models.VisitTypeResponse, error) {
	s.logger.Info("Create: creating visit type name=%s", req.Name)

	if err := validateVisitType(req); err != nil {
		s.logger.Warn("Create: visit type validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Проверяем название до вставки; уникальный индекс страхует от гонки
	if _, err := s.visitTypeRepo.GetByName(ctx, strings.TrimSpace(req.Name)); err == nil {
		s.logger.Warn("Create: visit type name=%s already exists", req.Name)
		return nil, ErrDuplicateVisitType
	} else if !errors.Is(err, visitTypeRepo.ErrVisitTypeNotFound) {
		s.logger.Error("Create: failed to check name uniqueness: %v", err)
		return nil, fmt.Errorf("%w: Create - failed to check name uniqueness: %v", ErrInternal, err)
	}

	created, err := s.visitTypeRepo.Create(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, visitTypeRepo.ErrDuplicateVisitType) {
			s.logger.Warn("Create: visit type name=%s already exists", req.Name)
			return nil, ErrDuplicateVisitType
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: visit type id=%d created", created.ID)
	return models.FromDomainVisitType(created), nil
}

// List получает все типы визитов, отсортированные по названию
func (s *Service) List(ctx context.Context) (*models.VisitTypeListResponse, error) {
	types, err := s.visitTypeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVisitTypeList(types), nil
}

// validateVisitType проверяет бизнес-правила типа визита
func validateVisitType(req *models.CreateVisitTypeRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return errors.New("name is required")
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("name exceeds %d characters", domain.MaxNameLength)
	}
	if len(req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("description exceeds %d characters", domain.MaxDescriptionLength)
	}
	return nil
}
