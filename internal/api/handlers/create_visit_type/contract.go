package create_visit_type

import (
	"context"

	"github.com/m04kA/Park-ReservationService/internal/service/visittypes/models"
)

type VisitTypeService interface {
	Create(ctx context.Context, req *models.CreateVisitTypeRequest) (*models.VisitTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
