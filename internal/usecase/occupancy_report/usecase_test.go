package occupancy_report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	occupancyReport "github.com/m04kA/Park-ReservationService/internal/usecase/occupancy_report"
)

type mockReservationRepo struct {
	listWithFilter func(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

func (m *mockReservationRepo) ListWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	return m.listWithFilter(ctx, filter)
}

type mockSlotRepo struct {
	listByDateRange func(ctx context.Context, from, to *time.Time) ([]*domain.Slot, error)
}

func (m *mockSlotRepo) ListByDateRange(ctx context.Context, from, to *time.Time) ([]*domain.Slot, error) {
	return m.listByDateRange(ctx, from, to)
}

type mockNotificationRepo struct {
	append func(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error)
}

func (m *mockNotificationRepo) Append(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error) {
	return m.append(ctx, event)
}

type fakeTxManager struct{}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func slot(id int64, date time.Time, max int) *domain.Slot {
	return &domain.Slot{ID: id, SlotDate: date, CapacityMax: max}
}

func reservation(slotID int64, count int) *domain.Reservation {
	return &domain.Reservation{SlotID: slotID, VisitorCount: count, Status: domain.StatusActive}
}

func newUseCase(
	reservations []*domain.Reservation,
	slots []*domain.Slot,
	notify func(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error),
) *occupancyReport.UseCase {
	if notify == nil {
		notify = func(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error) {
			return event, nil
		}
	}
	return occupancyReport.NewUseCase(
		&mockReservationRepo{
			listWithFilter: func(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
				return reservations, nil
			},
		},
		&mockSlotRepo{
			listByDateRange: func(ctx context.Context, from, to *time.Time) ([]*domain.Slot, error) {
				return slots, nil
			},
		},
		&mockNotificationRepo{append: notify},
		fakeTxManager{},
		noopLogger{},
	)
}

func TestExecute_ComputesMetrics(t *testing.T) {
	slots := []*domain.Slot{
		slot(1, day(10), 30),
		slot(2, day(11), 30),
		slot(3, day(12), 40),
	}
	reservations := []*domain.Reservation{
		reservation(1, 5),
		reservation(1, 3),
		reservation(2, 10),
		reservation(3, 2),
	}

	uc := newUseCase(reservations, slots, nil)

	resp, err := uc.Execute(context.Background(), &occupancyReport.Request{})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.TotalReservations)
	assert.Equal(t, 20, resp.TotalVisitors)
	assert.Equal(t, 100, resp.AggregateCapacity)
	assert.Equal(t, 20, resp.OccupancyPercent)
	assert.Nil(t, resp.Alert)

	// Даты по убыванию посетителей: 11-е (10), 10-е (8), 12-е (2)
	require.Len(t, resp.TopDates, 3)
	assert.Equal(t, day(11), resp.TopDates[0].Date)
	assert.Equal(t, 10, resp.TopDates[0].Visitors)
	assert.Equal(t, day(10), resp.TopDates[1].Date)
	assert.Equal(t, 8, resp.TopDates[1].Visitors)
	assert.Equal(t, day(12), resp.TopDates[2].Date)
}

func TestExecute_TieBreakPrefersEarlierDate(t *testing.T) {
	slots := []*domain.Slot{
		slot(1, day(20), 50),
		slot(2, day(5), 50),
	}
	reservations := []*domain.Reservation{
		reservation(1, 7),
		reservation(2, 7),
	}

	uc := newUseCase(reservations, slots, nil)

	resp, err := uc.Execute(context.Background(), &occupancyReport.Request{})
	require.NoError(t, err)

	require.Len(t, resp.TopDates, 2)
	assert.Equal(t, day(5), resp.TopDates[0].Date)
	assert.Equal(t, day(20), resp.TopDates[1].Date)
}

func TestExecute_LimitsTopDatesToFive(t *testing.T) {
	var slots []*domain.Slot
	var reservations []*domain.Reservation
	for i := 1; i <= 7; i++ {
		slots = append(slots, slot(int64(i), day(i), 100))
		reservations = append(reservations, reservation(int64(i), i))
	}

	uc := newUseCase(reservations, slots, nil)

	resp, err := uc.Execute(context.Background(), &occupancyReport.Request{})
	require.NoError(t, err)

	require.Len(t, resp.TopDates, 5)
	// Самая загруженная дата первой
	assert.Equal(t, 7, resp.TopDates[0].Visitors)
	assert.Equal(t, 3, resp.TopDates[4].Visitors)
}

func TestExecute_AlertAboveThreshold(t *testing.T) {
	slots := []*domain.Slot{slot(1, day(10), 100)}
	reservations := []*domain.Reservation{reservation(1, 85)}

	var alertEvent *domain.NotificationEvent
	uc := newUseCase(reservations, slots, func(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error) {
		alertEvent = event
		return event, nil
	})

	resp, err := uc.Execute(context.Background(), &occupancyReport.Request{})
	require.NoError(t, err)

	assert.Equal(t, 85, resp.OccupancyPercent)
	require.NotNil(t, resp.Alert)
	assert.Contains(t, *resp.Alert, "85%")

	require.NotNil(t, alertEvent)
	assert.Equal(t, domain.CategoryCapacityAlert, alertEvent.Category)
}

func TestExecute_NoAlertAtThreshold(t *testing.T) {
	slots := []*domain.Slot{slot(1, day(10), 100)}
	reservations := []*domain.Reservation{reservation(1, 80)}

	notified := false
	uc := newUseCase(reservations, slots, func(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error) {
		notified = true
		return event, nil
	})

	resp, err := uc.Execute(context.Background(), &occupancyReport.Request{})
	require.NoError(t, err)

	// Ровно 80% — порог не превышен
	assert.Equal(t, 80, resp.OccupancyPercent)
	assert.Nil(t, resp.Alert)
	assert.False(t, notified)
}

func TestExecute_ZeroCapacity(t *testing.T) {
	uc := newUseCase(nil, nil, nil)

	resp, err := uc.Execute(context.Background(), &occupancyReport.Request{})
	require.NoError(t, err)

	assert.Zero(t, resp.TotalReservations)
	assert.Zero(t, resp.TotalVisitors)
	assert.Zero(t, resp.AggregateCapacity)
	assert.Zero(t, resp.OccupancyPercent)
	assert.Nil(t, resp.Alert)
	assert.Empty(t, resp.TopDates)
}

func TestExecute_RoundsToNearestPercent(t *testing.T) {
	// 17 из 60 мест: 28.33% -> 28
	slots := []*domain.Slot{slot(1, day(10), 60)}
	reservations := []*domain.Reservation{reservation(1, 17)}

	uc := newUseCase(reservations, slots, nil)

	resp, err := uc.Execute(context.Background(), &occupancyReport.Request{})
	require.NoError(t, err)
	assert.Equal(t, 28, resp.OccupancyPercent)
}

func TestExecute_InvalidDateRange(t *testing.T) {
	uc := newUseCase(nil, nil, nil)

	from := day(20)
	to := day(10)
	_, err := uc.Execute(context.Background(), &occupancyReport.Request{DateFrom: &from, DateTo: &to})
	require.ErrorIs(t, err, occupancyReport.ErrInvalidInput)
}
