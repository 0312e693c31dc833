package list_slots

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	"github.com/m04kA/Park-ReservationService/internal/service/slots/models"
)

// parseQuery собирает фильтр слотов из query-параметров:
// dateFrom, dateTo (YYYY-MM-DD), onlyAvailable
func parseQuery(query url.Values) (*models.ListSlotsRequest, error) {
	req := &models.ListSlotsRequest{}

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

	if raw := query.Get("onlyAvailable"); raw != "" {
		onlyAvailable, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid onlyAvailable: %w", err)
		}
		req.OnlyAvailable = onlyAvailable
	}

	return req, nil
}
