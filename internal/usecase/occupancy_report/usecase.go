package occupancy_report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/Park-ReservationService/internal/domain"
)

// UseCase use case для подсчёта метрик загруженности парка.
// Работает только на чтение поверх сохранённого состояния; единственная
// запись — событие Capacity Alert, которое фиксируется уже после
// завершения read-only транзакции.
type UseCase struct {
	reservationRepo  ReservationRepository
	slotRepo         SlotRepository
	notificationRepo NotificationRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	notificationRepo NotificationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		slotRepo:         slotRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute подсчитывает метрики загруженности за период
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("OccupancyReport: date_from=%s, date_to=%s, visit_type=%v",
		formatDate(req.DateFrom), formatDate(req.DateTo), req.VisitTypeID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("OccupancyReport: validation failed: %v", err)
		return nil, err
	}

	var (
		reservations []*domain.Reservation
		slots        []*domain.Slot
	)

	// Читаем снапшот броней и слотов в одной read-only транзакции,
	// чтобы метрики были согласованы между собой
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		// Учитываются только брони, удерживающие места (active + used)
		reservations, err = uc.reservationRepo.ListWithFilter(txCtx, domain.ReservationFilter{
			DateFrom:        req.DateFrom,
			DateTo:          req.DateTo,
			VisitTypeID:     req.VisitTypeID,
			IncludeInactive: false,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		slots, err = uc.slotRepo.ListByDateRange(txCtx, req.DateFrom, req.DateTo)
		if err != nil {
			return fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		uc.logger.Error("OccupancyReport: %v", err)
		return nil, err
	}

	resp := computeMetrics(reservations, slots)

	// Предупреждение о высокой загруженности фиксируется вне read-only
	// транзакции
	if resp.Alert != nil {
		if _, err := uc.notificationRepo.Append(ctx, &domain.NotificationEvent{
			Category: domain.CategoryCapacityAlert,
			Message:  *resp.Alert,
		}); err != nil {
			uc.logger.Error("OccupancyReport: failed to append capacity alert: %v", err)
			return nil, fmt.Errorf("%w: failed to append capacity alert: %v", ErrInternal, err)
		}
		uc.logger.Warn("OccupancyReport: %s", *resp.Alert)
	}

	uc.logger.Info("OccupancyReport: %d reservations, %d visitors, %d capacity, %d%% occupancy",
		resp.TotalReservations, resp.TotalVisitors, resp.AggregateCapacity, resp.OccupancyPercent)

	return resp, nil
}

// computeMetrics подсчитывает метрики по снапшоту броней и слотов
func computeMetrics(reservations []*domain.Reservation, slots []*domain.Slot) *Response {
	resp := &Response{
		TotalReservations: len(reservations),
	}

	visitorsByDate := make(map[string]*DateVisitors)

	slotDates := make(map[int64]*domain.Slot, len(slots))
	for _, s := range slots {
		slotDates[s.ID] = s
		resp.AggregateCapacity += s.CapacityMax
	}

	for _, res := range reservations {
		resp.TotalVisitors += res.VisitorCount

		s, ok := slotDates[res.SlotID]
		if !ok {
			continue
		}
		key := s.SlotDate.Format(domain.DateFormat)
		if entry, ok := visitorsByDate[key]; ok {
			entry.Visitors += res.VisitorCount
		} else {
			visitorsByDate[key] = &DateVisitors{Date: s.SlotDate, Visitors: res.VisitorCount}
		}
	}

	resp.OccupancyPercent = occupancyPercent(resp.TotalVisitors, resp.AggregateCapacity)

	if resp.OccupancyPercent > domain.OccupancyAlertThreshold {
		alert := fmt.Sprintf("Park occupancy at %d%% (%d of %d spots) exceeds %d%% threshold",
			resp.OccupancyPercent, resp.TotalVisitors, resp.AggregateCapacity, domain.OccupancyAlertThreshold)
		resp.Alert = &alert
	}

	resp.TopDates = topDates(visitorsByDate)

	return resp
}

// occupancyPercent вычисляет процент загруженности в целочисленной
// арифметике (округление до ближайшего целого), без двоичных дробей
func occupancyPercent(totalVisitors, aggregateCapacity int) int {
	if aggregateCapacity <= 0 {
		return 0
	}
	return (totalVisitors*100 + aggregateCapacity/2) / aggregateCapacity
}

// topDates возвращает до 5 дат с наибольшим суммарным числом посетителей,
// по убыванию; при равенстве — более ранняя дата первой
func topDates(visitorsByDate map[string]*DateVisitors) []DateVisitors {
	dates := make([]DateVisitors, 0, len(visitorsByDate))
	for _, entry := range visitorsByDate {
		dates = append(dates, *entry)
	}

	sort.Slice(dates, func(i, j int) bool {
		if dates[i].Visitors != dates[j].Visitors {
			return dates[i].Visitors > dates[j].Visitors
		}
		return dates[i].Date.Before(dates[j].Date)
	})

	if len(dates) > domain.TopDatesLimit {
		dates = dates[:domain.TopDatesLimit]
	}

	return dates
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DateFrom != nil && req.DateTo != nil && req.DateTo.Before(*req.DateFrom) {
		return fmt.Errorf("%w: dateTo must not be before dateFrom", ErrInvalidInput)
	}
	if req.VisitTypeID != nil && *req.VisitTypeID <= 0 {
		return fmt.Errorf("%w: visitTypeId must be positive", ErrInvalidInput)
	}
	return nil
}

// formatDate форматирует опциональную дату для логов
func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(domain.DateFormat)
}
