package list_visit_types

import (
	"context"

	"github.com/m04kA/Park-ReservationService/internal/service/visittypes/models"
)

type VisitTypeService interface {
	List(ctx context.Context) (*models.VisitTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
