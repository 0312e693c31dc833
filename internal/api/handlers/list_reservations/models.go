package list_reservations

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	"github.com/m04kA/Park-ReservationService/internal/service/reservations/models"
)

// parseQuery собирает фильтр списка броней из query-параметров:
// dateFrom, dateTo (YYYY-MM-DD), status, visitTypeId, includeInactive
func parseQuery(query url.Values) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{}

	if raw := query.Get("dateFrom"); raw != "" {
		dateFrom, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid dateFrom: %w", err)
		}
		req.DateFrom = &dateFrom
	}

	if raw := query.Get("dateTo"); raw != "" {
		dateTo, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid dateTo: %w", err)
		}
		req.DateTo = &dateTo
	}

	if raw := query.Get("status"); raw != "" {
		status := raw
		req.Status = &status
	}

	if raw := query.Get("visitTypeId"); raw != "" {
		visitTypeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid visitTypeId: %w", err)
		}
		req.VisitTypeID = &visitTypeID
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
