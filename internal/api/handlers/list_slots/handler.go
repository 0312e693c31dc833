package list_slots

import (
	"net/http"

	"github.com/m04kA/Park-ReservationService/internal/api/handlers"
)

const (
	msgInvalidQuery = "некорректные параметры фильтрации"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /slots - Failed to list slots: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - Retrieved %d slots", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
