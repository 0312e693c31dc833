package list_notifications

import (
	"errors"
	"net/http"

	"github.com/m04kA/Park-ReservationService/internal/api/handlers"
	"github.com/m04kA/Park-ReservationService/internal/service/notifications"
	"github.com/m04kA/Park-ReservationService/internal/service/notifications/models"
)

const (
	msgInvalidCategory = "некорректная категория событий"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/monitoring/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListNotificationsRequest{}
	if raw := r.URL.Query().Get("category"); raw != "" {
		req.Category = &raw
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrInvalidInput):
			h.logger.Warn("GET /monitoring/notifications - Invalid category: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		default:
			h.logger.Error("GET /monitoring/notifications - Failed to list notifications: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /monitoring/notifications - Retrieved %d events", len(result.Notifications))
	handlers.RespondJSON(w, http.StatusOK, result)
}
