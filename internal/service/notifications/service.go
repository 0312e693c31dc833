package notifications

import (
	"context"
	"fmt"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	"github.com/m04kA/Park-ReservationService/internal/service/notifications/models"
)

// Service сервис для просмотра журнала системных событий
type Service struct {
	notificationRepo NotificationRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(notificationRepo NotificationRepository, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// List получает события журнала, новые первыми,
// с опциональным фильтром по категории
func (s *Service) List(ctx context.Context, req *models.ListNotificationsRequest) (*models.NotificationListResponse, error) {
	if req.Category != nil && !isKnownCategory(*req.Category) {
		s.logger.Warn("List: unknown notification category=%s", *req.Category)
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *req.Category)
	}

	events, err := s.notificationRepo.List(ctx, req.Category)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d notification events", len(events))
	return models.FromDomainNotificationList(events), nil
}

func isKnownCategory(category string) bool {
	switch category {
	case domain.CategoryReservationCreated,
		domain.CategoryReservationModified,
		domain.CategoryCapacityAlert:
		return true
	}
	return false
}
