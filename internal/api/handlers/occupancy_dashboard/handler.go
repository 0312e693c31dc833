package occupancy_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/Park-ReservationService/internal/api/handlers"
	occupancyReport "github.com/m04kA/Park-ReservationService/internal/usecase/occupancy_report"
)

const (
	msgInvalidQuery = "некорректные параметры фильтрации"
)

type Handler struct {
	useCase OccupancyReportUseCase
	logger  Logger
}

func NewHandler(useCase OccupancyReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/monitoring/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /monitoring/dashboard - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, occupancyReport.ErrInvalidInput):
			h.logger.Warn("GET /monitoring/dashboard - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /monitoring/dashboard - Failed to build report: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /monitoring/dashboard - Report built: reservations=%d, visitors=%d, occupancy=%d%%",
		result.TotalReservations, result.TotalVisitors, result.OccupancyPercent)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
