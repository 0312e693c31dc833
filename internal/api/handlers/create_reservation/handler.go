package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/Park-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/Park-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgSlotNotFound       = "слот посещения не найден"
	msgVisitTypeNotFound  = "тип визита не найден"
	msgCapacityExceeded   = "в выбранном слоте недостаточно свободных мест"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: slot_id=%d, group_size=%d",
				req.SlotID, 1+len(req.Companions))
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, createReservation.ErrSlotNotFound):
			h.logger.Warn("POST /reservations - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createReservation.ErrVisitTypeNotFound):
			h.logger.Warn("POST /reservations - Visit type not found: visit_type_id=%d", req.VisitTypeID)
			handlers.RespondNotFound(w, msgVisitTypeNotFound)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: slot_id=%d, error=%v",
				req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, slot_id=%d, visitors=%d",
		result.ID, result.SlotID, result.VisitorCount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
