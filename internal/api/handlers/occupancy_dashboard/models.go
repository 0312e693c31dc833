package occupancy_dashboard

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	occupancyReport "github.com/m04kA/Park-ReservationService/internal/usecase/occupancy_report"
)

// DateVisitorsResponse посетители на одну дату
type DateVisitorsResponse struct {
	Date     string `json:"date"`
	Visitors int    `json:"visitors"`
}

// DashboardResponse HTTP response model
type DashboardResponse struct {
	TotalReservations int                    `json:"totalReservations"`
	TotalVisitors     int                    `json:"totalVisitors"`
	AggregateCapacity int                    `json:"aggregateCapacity"`
	OccupancyPercent  int                    `json:"occupancyPercent"`
	Alert             *string                `json:"alert,omitempty"`
	TopDates          []DateVisitorsResponse `json:"topDates"`
}

// parseQuery собирает фильтр отчета из query-параметров:
// dateFrom, dateTo (YYYY-MM-DD), visitTypeId
func parseQuery(query url.Values) (*occupancyReport.Request, error) {
	req := &occupancyReport.Request{}

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

	if raw := query.Get("visitTypeId"); raw != "" {
		visitTypeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid visitTypeId: %w", err)
		}
		req.VisitTypeID = &visitTypeID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *occupancyReport.Response) *DashboardResponse {
	dashboard := &DashboardResponse{
		TotalReservations: resp.TotalReservations,
		TotalVisitors:     resp.TotalVisitors,
		AggregateCapacity: resp.AggregateCapacity,
		OccupancyPercent:  resp.OccupancyPercent,
		Alert:             resp.Alert,
		TopDates:          make([]DateVisitorsResponse, 0, len(resp.TopDates)),
	}

	for _, d := range resp.TopDates {
		dashboard.TopDates = append(dashboard.TopDates, DateVisitorsResponse{
			Date:     d.Date.Format(domain.DateFormat),
			Visitors: d.Visitors,
		})
	}

	return dashboard
}
