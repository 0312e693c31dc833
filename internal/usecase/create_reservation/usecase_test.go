package create_reservation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	slotRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/slot"
	createReservation "github.com/m04kA/Park-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/Park-ReservationService/pkg/types"
)

// Моки репозиториев: задаются только те методы, которые нужны тесту

type mockVisitorRepo struct {
	upsert          func(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error)
	createCompanion func(ctx context.Context, c *domain.Companion) (*domain.Companion, error)
}

func (m *mockVisitorRepo) Upsert(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error) {
	return m.upsert(ctx, v)
}

func (m *mockVisitorRepo) CreateCompanion(ctx context.Context, c *domain.Companion) (*domain.Companion, error) {
	return m.createCompanion(ctx, c)
}

type mockSlotRepo struct {
	reserve func(ctx context.Context, id int64, count int) (*domain.Slot, error)
}

func (m *mockSlotRepo) Reserve(ctx context.Context, id int64, count int) (*domain.Slot, error) {
	return m.reserve(ctx, id, count)
}

type mockVisitTypeRepo struct {
	getByID func(ctx context.Context, id int64) (*domain.VisitType, error)
}

func (m *mockVisitTypeRepo) GetByID(ctx context.Context, id int64) (*domain.VisitType, error) {
	return m.getByID(ctx, id)
}

type mockReservationRepo struct {
	create func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

func (m *mockReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	return m.create(ctx, res)
}

type mockNotificationRepo struct {
	append func(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error)
}

func (m *mockNotificationRepo) Append(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error) {
	return m.append(ctx, event)
}

// fakeTxManager прозрачно выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func slotFixture(used, max int) *domain.Slot {
	start, _ := types.NewTimeStringFromString("10:00")
	end, _ := types.NewTimeStringFromString("12:00")
	return &domain.Slot{
		ID:           7,
		SlotDate:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:    start,
		EndTime:      end,
		CapacityMax:  max,
		CapacityUsed: used,
	}
}

func validRequest() *createReservation.Request {
	return &createReservation.Request{
		NationalID:  "12345678-9",
		Name:        "Maria",
		Surname:     "Gonzalez",
		Phone:       "+56911111111",
		Email:       "maria@example.com",
		Age:         34,
		SlotID:      7,
		VisitTypeID: 2,
		Companions: []createReservation.CompanionInput{
			{NationalID: "11111111-1", Name: "Pablo", Age: 10},
			{NationalID: "22222222-2", Name: "Sofia", Age: 8},
		},
	}
}

func TestExecute_CreatesReservationWithCompanions(t *testing.T) {
	var reservedCount int
	var companionsCreated int
	var notified *domain.NotificationEvent

	txManager := &fakeTxManager{}
	uc := createReservation.NewUseCase(
		&mockVisitorRepo{
			upsert: func(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error) {
				out := *v
				out.ID = 42
				return &out, nil
			},
			createCompanion: func(ctx context.Context, c *domain.Companion) (*domain.Companion, error) {
				companionsCreated++
				assert.Equal(t, int64(42), c.VisitorID)
				return c, nil
			},
		},
		&mockSlotRepo{
			reserve: func(ctx context.Context, id int64, count int) (*domain.Slot, error) {
				reservedCount = count
				slot := slotFixture(count, 30)
				return slot, nil
			},
		},
		&mockVisitTypeRepo{
			getByID: func(ctx context.Context, id int64) (*domain.VisitType, error) {
				return &domain.VisitType{ID: id, Name: "Guided tour"}, nil
			},
		},
		&mockReservationRepo{
			create: func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
				out := *res
				out.ID = 100
				return &out, nil
			},
		},
		&mockNotificationRepo{
			append: func(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error) {
				notified = event
				return event, nil
			},
		},
		txManager,
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Группа из основного посетителя и двух сопровождающих занимает 3 места
	assert.Equal(t, 3, reservedCount)
	assert.Equal(t, 2, companionsCreated)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(42), resp.VisitorID)
	assert.Equal(t, 3, resp.VisitorCount)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
	assert.Equal(t, "Guided tour", resp.VisitTypeName)
	assert.Equal(t, 1, txManager.calls)

	require.NotNil(t, notified)
	assert.Equal(t, domain.CategoryReservationCreated, notified.Category)
	assert.Contains(t, notified.Message, "3 visitor(s)")
}

func TestExecute_CapacityExceeded(t *testing.T) {
	reservationCreated := false

	uc := createReservation.NewUseCase(
		&mockVisitorRepo{
			upsert: func(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error) {
				out := *v
				out.ID = 42
				return &out, nil
			},
			createCompanion: func(ctx context.Context, c *domain.Companion) (*domain.Companion, error) {
				return c, nil
			},
		},
		&mockSlotRepo{
			reserve: func(ctx context.Context, id int64, count int) (*domain.Slot, error) {
				return nil, slotRepo.ErrCapacityExceeded
			},
		},
		&mockVisitTypeRepo{
			getByID: func(ctx context.Context, id int64) (*domain.VisitType, error) {
				return &domain.VisitType{ID: id, Name: "Free visit"}, nil
			},
		},
		&mockReservationRepo{
			create: func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
				reservationCreated = true
				return res, nil
			},
		},
		&mockNotificationRepo{
			append: func(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error) {
				return event, nil
			},
		},
		&fakeTxManager{},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, createReservation.ErrCapacityExceeded)
	assert.Nil(t, resp)
	// Бронь не создаётся, если места не были зарезервированы
	assert.False(t, reservationCreated)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := createReservation.NewUseCase(
		&mockVisitorRepo{
			upsert: func(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error) {
				return v, nil
			},
			createCompanion: func(ctx context.Context, c *domain.Companion) (*domain.Companion, error) {
				return c, nil
			},
		},
		&mockSlotRepo{
			reserve: func(ctx context.Context, id int64, count int) (*domain.Slot, error) {
				return nil, slotRepo.ErrSlotNotFound
			},
		},
		&mockVisitTypeRepo{
			getByID: func(ctx context.Context, id int64) (*domain.VisitType, error) {
				return &domain.VisitType{ID: id, Name: "Free visit"}, nil
			},
		},
		&mockReservationRepo{},
		&mockNotificationRepo{},
		&fakeTxManager{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, createReservation.ErrSlotNotFound)
}

func TestExecute_ValidationRejectsBeforeTransaction(t *testing.T) {
	txManager := &fakeTxManager{}
	uc := createReservation.NewUseCase(
		&mockVisitorRepo{},
		&mockSlotRepo{},
		&mockVisitTypeRepo{},
		&mockReservationRepo{},
		&mockNotificationRepo{},
		txManager,
		noopLogger{},
	)

	tests := []struct {
		name   string
		mutate func(req *createReservation.Request)
	}{
		{"missing national id", func(req *createReservation.Request) { req.NationalID = "" }},
		{"missing name", func(req *createReservation.Request) { req.Name = "  " }},
		{"negative age", func(req *createReservation.Request) { req.Age = -1 }},
		{"zero slot id", func(req *createReservation.Request) { req.SlotID = 0 }},
		{"companion without name", func(req *createReservation.Request) {
			req.Companions = []createReservation.CompanionInput{{NationalID: "33333333-3", Age: 5}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, createReservation.ErrInvalidInput)
		})
	}

	// Ни одна ошибка валидации не должна была открыть транзакцию
	assert.Zero(t, txManager.calls)
}

func TestExecute_NotificationFailureAbortsTransaction(t *testing.T) {
	uc := createReservation.NewUseCase(
		&mockVisitorRepo{
			upsert: func(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error) {
				out := *v
				out.ID = 42
				return &out, nil
			},
			createCompanion: func(ctx context.Context, c *domain.Companion) (*domain.Companion, error) {
				return c, nil
			},
		},
		&mockSlotRepo{
			reserve: func(ctx context.Context, id int64, count int) (*domain.Slot, error) {
				return slotFixture(3, 30), nil
			},
		},
		&mockVisitTypeRepo{
			getByID: func(ctx context.Context, id int64) (*domain.VisitType, error) {
				return &domain.VisitType{ID: id, Name: "Guided tour"}, nil
			},
		},
		&mockReservationRepo{
			create: func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
				out := *res
				out.ID = 100
				return &out, nil
			},
		},
		&mockNotificationRepo{
			append: func(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error) {
				return nil, errors.New("insert failed")
			},
		},
		&fakeTxManager{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, createReservation.ErrInternal)
}
