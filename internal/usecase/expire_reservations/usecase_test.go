package expire_reservations_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	expireReservations "github.com/m04kA/Park-ReservationService/internal/usecase/expire_reservations"
)

type mockReservationRepo struct {
	listWithFilter func(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	updateStatus   func(ctx context.Context, id int64, status domain.ReservationStatus) error
}

func (m *mockReservationRepo) ListWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	return m.listWithFilter(ctx, filter)
}

func (m *mockReservationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	return m.updateStatus(ctx, id, status)
}

type mockSlotRepo struct {
	release func(ctx context.Context, id int64, count int) (*domain.Slot, error)
}

func (m *mockSlotRepo) Release(ctx context.Context, id int64, count int) (*domain.Slot, error) {
	return m.release(ctx, id, count)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestExecute_ExpiresPastActiveReservations(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	yesterday := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	var gotFilter domain.ReservationFilter
	expiredIDs := make(map[int64]domain.ReservationStatus)
	released := make(map[int64]int)

	uc := expireReservations.NewUseCase(
		&mockReservationRepo{
			listWithFilter: func(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
				gotFilter = filter
				return []*domain.Reservation{
					{ID: 1, SlotID: 10, VisitorCount: 4, Status: domain.StatusActive},
					{ID: 2, SlotID: 11, VisitorCount: 2, Status: domain.StatusActive},
				}, nil
			},
			updateStatus: func(ctx context.Context, id int64, status domain.ReservationStatus) error {
				expiredIDs[id] = status
				return nil
			},
		},
		&mockSlotRepo{
			release: func(ctx context.Context, id int64, count int) (*domain.Slot, error) {
				released[id] += count
				return &domain.Slot{ID: id}, nil
			},
		},
		fakeTxManager{},
		noopLogger{},
	).WithTimeProvider(fixedTime{now: now})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Expired)

	// Фильтр охватывает только прошедшие даты
	require.NotNil(t, gotFilter.DateTo)
	assert.Equal(t, yesterday, *gotFilter.DateTo)
	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, domain.StatusActive, *gotFilter.Status)

	// Места возвращены, статусы переведены в expired
	assert.Equal(t, 4, released[10])
	assert.Equal(t, 2, released[11])
	assert.Equal(t, domain.StatusExpired, expiredIDs[1])
	assert.Equal(t, domain.StatusExpired, expiredIDs[2])
}

func TestExecute_NothingToExpire(t *testing.T) {
	uc := expireReservations.NewUseCase(
		&mockReservationRepo{
			listWithFilter: func(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
				return nil, nil
			},
			updateStatus: func(ctx context.Context, id int64, status domain.ReservationStatus) error {
				t.Fatal("updateStatus must not be called")
				return nil
			},
		},
		&mockSlotRepo{
			release: func(ctx context.Context, id int64, count int) (*domain.Slot, error) {
				t.Fatal("release must not be called")
				return nil, nil
			},
		},
		fakeTxManager{},
		noopLogger{},
	).WithTimeProvider(fixedTime{now: time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resp.Expired)
}
