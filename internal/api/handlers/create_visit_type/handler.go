package create_visit_type

import (
	"errors"
	"net/http"

	"github.com/m04kA/Park-ReservationService/internal/api/handlers"
	"github.com/m04kA/Park-ReservationService/internal/service/visittypes"
	"github.com/m04kA/Park-ReservationService/internal/service/visittypes/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные типа визита"
	msgDuplicateVisitType = "тип визита с таким названием уже существует"
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

// Handle POST /api/v1/visit-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVisitTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /visit-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	visitType, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, visittypes.ErrDuplicateVisitType):
			h.logger.Warn("POST /visit-types - Duplicate visit type: name=%s", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateVisitType)

		case errors.Is(err, visittypes.ErrInvalidInput):
			h.logger.Warn("POST /visit-types - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /visit-types - Failed to create visit type: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /visit-types - Visit type created successfully: visit_type_id=%d", visitType.ID)
	handlers.RespondJSON(w, http.StatusCreated, visitType)
}
