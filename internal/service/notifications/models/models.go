package models

import (
	"time"

	"github.com/m04kA/Park-ReservationService/internal/domain"
)

// ListNotificationsRequest запрос на получение журнала событий
type ListNotificationsRequest struct {
	Category *string `json:"category,omitempty"` // Фильтр по категории (опционально)
}

// NotificationResponse одно событие журнала
type NotificationResponse struct {
	ID       int64     `json:"id"`
	Category string    `json:"category"`
	Message  string    `json:"message"`
	SentAt   time.Time `json:"sentAt"`
}

// NotificationListResponse ответ с журналом событий
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// FromDomainNotificationList конвертирует список domain моделей в DTO
func FromDomainNotificationList(events []*domain.NotificationEvent) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(events)),
	}

	for _, event := range events {
		resp.Notifications = append(resp.Notifications, NotificationResponse{
			ID:       event.ID,
			Category: event.Category,
			Message:  event.Message,
			SentAt:   event.SentAt,
		})
	}

	return resp
}
