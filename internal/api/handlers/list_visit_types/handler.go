package list_visit_types

import (
	"net/http"

	"github.com/m04kA/Park-ReservationService/internal/api/handlers"
)

type Handler struct {
	service VisitTypeService
	logger  Logger
}

func NewHandler(service VisitTypeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/visit-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /visit-types - Failed to list visit types: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /visit-types - Retrieved %d visit types", len(result.VisitTypes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
