package create_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/Park-ReservationService/internal/api/handlers"
	"github.com/m04kA/Park-ReservationService/internal/service/slots"
	"github.com/m04kA/Park-ReservationService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные слота"
	msgDuplicateSlot      = "слот на эту дату и время уже существует"
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

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrDuplicateSlot):
			h.logger.Warn("POST /slots - Duplicate slot: date=%s start=%s", req.SlotDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSlot)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /slots - Failed to create slot: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created successfully: slot_id=%d", slot.ID)
	handlers.RespondJSON(w, http.StatusCreated, slot)
}
