package expire_reservations

import (
	"net/http"

	"github.com/m04kA/Park-ReservationService/internal/api/handlers"
)

type Handler struct {
	useCase ExpireReservationsUseCase
	logger  Logger
}

func NewHandler(useCase ExpireReservationsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// ExpireResponse HTTP response model
type ExpireResponse struct {
	Expired int `json:"expired"`
}

// Handle POST /api/v1/reservations/expire
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /reservations/expire - Sweep failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /reservations/expire - Expired %d reservations", result.Expired)
	handlers.RespondJSON(w, http.StatusOK, ExpireResponse{Expired: result.Expired})
}
