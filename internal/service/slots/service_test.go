package slots_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	slotRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/slot"
	"github.com/m04kA/Park-ReservationService/internal/service/slots"
	"github.com/m04kA/Park-ReservationService/internal/service/slots/models"
	"github.com/m04kA/Park-ReservationService/pkg/types"
)

type mockSlotRepo struct {
	create          func(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	getByID         func(ctx context.Context, id int64) (*domain.Slot, error)
	listByDateRange func(ctx context.Context, from, to *time.Time) ([]*domain.Slot, error)
}

func (m *mockSlotRepo) Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	return m.create(ctx, s)
}

func (m *mockSlotRepo) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	return m.getByID(ctx, id)
}

func (m *mockSlotRepo) ListByDateRange(ctx context.Context, from, to *time.Time) ([]*domain.Slot, error) {
	return m.listByDateRange(ctx, from, to)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func validCreateRequest() *models.CreateSlotRequest {
	return &models.CreateSlotRequest{
		SlotDate:    "2026-03-15",
		StartTime:   "10:00",
		EndTime:     "12:00",
		CapacityMax: 30,
	}
}

func TestCreate_Success(t *testing.T) {
	svc := slots.NewService(&mockSlotRepo{
		create: func(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
			out := *s
			out.ID = 7
			return &out, nil
		},
	}, noopLogger{})

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-03-15", resp.SlotDate)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, 30, resp.CapacityMax)
	assert.Equal(t, 30, resp.Available)
}

func TestCreate_Duplicate(t *testing.T) {
	svc := slots.NewService(&mockSlotRepo{
		create: func(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
			return nil, slotRepo.ErrDuplicateSlot
		},
	}, noopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.ErrorIs(t, err, slots.ErrDuplicateSlot)
}

func TestCreate_ValidationErrors(t *testing.T) {
	svc := slots.NewService(&mockSlotRepo{
		create: func(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
			t.Fatal("create must not be called")
			return nil, nil
		},
	}, noopLogger{})

	tests := []struct {
		name   string
		mutate func(req *models.CreateSlotRequest)
	}{
		{"bad date", func(req *models.CreateSlotRequest) { req.SlotDate = "15-03-2026" }},
		{"bad start time", func(req *models.CreateSlotRequest) { req.StartTime = "25:00" }},
		{"start after end", func(req *models.CreateSlotRequest) { req.StartTime = "14:00" }},
		{"negative capacity", func(req *models.CreateSlotRequest) { req.CapacityMax = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			require.ErrorIs(t, err, slots.ErrInvalidInput)
		})
	}
}

func TestList_OnlyAvailableFiltersFullSlots(t *testing.T) {
	start, _ := types.NewTimeStringFromString("10:00")
	end, _ := types.NewTimeStringFromString("12:00")
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	svc := slots.NewService(&mockSlotRepo{
		listByDateRange: func(ctx context.Context, from, to *time.Time) ([]*domain.Slot, error) {
			return []*domain.Slot{
				{ID: 1, SlotDate: date, StartTime: start, EndTime: end, CapacityMax: 30, CapacityUsed: 30},
				{ID: 2, SlotDate: date, StartTime: start, EndTime: end, CapacityMax: 30, CapacityUsed: 12},
			}, nil
		},
	}, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListSlotsRequest{OnlyAvailable: true})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, int64(2), resp.Slots[0].ID)
	assert.Equal(t, 18, resp.Slots[0].Available)
}

func TestList_ReturnsAllByDefault(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	svc := slots.NewService(&mockSlotRepo{
		listByDateRange: func(ctx context.Context, from, to *time.Time) ([]*domain.Slot, error) {
			return []*domain.Slot{
				{ID: 1, SlotDate: date, CapacityMax: 30, CapacityUsed: 30},
				{ID: 2, SlotDate: date, CapacityMax: 30, CapacityUsed: 12},
			}, nil
		},
	}, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListSlotsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 2)
}
