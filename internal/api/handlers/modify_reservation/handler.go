package modify_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Park-ReservationService/internal/api/handlers"
	"github.com/m04kA/Park-ReservationService/internal/api/middleware"
	modifyReservation "github.com/m04kA/Park-ReservationService/internal/usecase/modify_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректные данные изменения"
	msgMissingActor         = "отсутствует идентификатор сотрудника"
	msgReservationNotFound  = "бронь не найдена"
	msgSlotNotFound         = "целевой слот не найден"
	msgVisitTypeNotFound    = "тип визита не найден"
	msgCapacityExceeded     = "в целевом слоте недостаточно свободных мест"
	msgInvalidTransition    = "бронь в текущем статусе нельзя изменить"
)

type Handler struct {
	useCase ModifyReservationUseCase
	logger  Logger
}

func NewHandler(useCase ModifyReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/modify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/modify - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/modify - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req ModifyReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/modify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID, actor))
	if err != nil {
		switch {
		case errors.Is(err, modifyReservation.ErrCapacityExceeded):
			h.logger.Warn("PATCH /reservations/{id}/modify - Capacity exceeded: reservation_id=%d, new_slot_id=%d",
				reservationID, req.NewSlotID)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, modifyReservation.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{id}/modify - Invalid transition: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, modifyReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/modify - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, modifyReservation.ErrSlotNotFound):
			h.logger.Warn("PATCH /reservations/{id}/modify - Slot not found: new_slot_id=%d", req.NewSlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, modifyReservation.ErrVisitTypeNotFound):
			h.logger.Warn("PATCH /reservations/{id}/modify - Visit type not found: new_visit_type_id=%d", req.NewVisitTypeID)
			handlers.RespondNotFound(w, msgVisitTypeNotFound)

		case errors.Is(err, modifyReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/modify - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /reservations/{id}/modify - Failed to modify reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/modify - Reservation modified successfully: reservation_id=%d, slot_id=%d",
		result.ID, result.SlotID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
