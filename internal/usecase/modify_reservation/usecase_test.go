package modify_reservation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	slotRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/slot"
	modifyReservation "github.com/m04kA/Park-ReservationService/internal/usecase/modify_reservation"
	"github.com/m04kA/Park-ReservationService/pkg/types"
)

// fakeSlotStore хранит счётчики занятости в памяти, имитируя
// атомарные Reserve/Release репозитория слотов
type fakeSlotStore struct {
	slots map[int64]*domain.Slot
}

func newFakeSlotStore(slots ...*domain.Slot) *fakeSlotStore {
	store := &fakeSlotStore{slots: make(map[int64]*domain.Slot)}
	for _, s := range slots {
		store.slots[s.ID] = s
	}
	return store
}

func (f *fakeSlotStore) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSlotStore) Reserve(ctx context.Context, id int64, count int) (*domain.Slot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	if s.CapacityUsed+count > s.CapacityMax {
		return nil, slotRepo.ErrCapacityExceeded
	}
	s.CapacityUsed += count
	copied := *s
	return &copied, nil
}

func (f *fakeSlotStore) Release(ctx context.Context, id int64, count int) (*domain.Slot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	s.CapacityUsed -= count
	if s.CapacityUsed < 0 {
		s.CapacityUsed = 0
	}
	copied := *s
	return &copied, nil
}

type mockReservationRepo struct {
	getByID           func(ctx context.Context, id int64) (*domain.Reservation, error)
	updateSlotAndType func(ctx context.Context, id int64, slotID, visitTypeID int64) error
}

func (m *mockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return m.getByID(ctx, id)
}

func (m *mockReservationRepo) UpdateSlotAndType(ctx context.Context, id int64, slotID, visitTypeID int64) error {
	return m.updateSlotAndType(ctx, id, slotID, visitTypeID)
}

type mockVisitTypeRepo struct {
	getByID func(ctx context.Context, id int64) (*domain.VisitType, error)
}

func (m *mockVisitTypeRepo) GetByID(ctx context.Context, id int64) (*domain.VisitType, error) {
	return m.getByID(ctx, id)
}

type mockChangeLogRepo struct {
	append func(ctx context.Context, rec *domain.ChangeRecord) (*domain.ChangeRecord, error)
}

func (m *mockChangeLogRepo) Append(ctx context.Context, rec *domain.ChangeRecord) (*domain.ChangeRecord, error) {
	return m.append(ctx, rec)
}

type mockNotificationRepo struct {
	append func(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error)
}

func (m *mockNotificationRepo) Append(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error) {
	return m.append(ctx, event)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func makeSlot(id int64, date time.Time, used, max int) *domain.Slot {
	start, _ := types.NewTimeStringFromString("10:00")
	end, _ := types.NewTimeStringFromString("12:00")
	return &domain.Slot{
		ID:           id,
		SlotDate:     date,
		StartTime:    start,
		EndTime:      end,
		CapacityMax:  max,
		CapacityUsed: used,
	}
}

func activeReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:           100,
		VisitorID:    42,
		SlotID:       1,
		VisitTypeID:  2,
		VisitorCount: 4,
		Status:       domain.StatusActive,
	}
}

func visitTypes() *mockVisitTypeRepo {
	return &mockVisitTypeRepo{
		getByID: func(ctx context.Context, id int64) (*domain.VisitType, error) {
			names := map[int64]string{2: "Guided tour", 3: "Free visit"}
			return &domain.VisitType{ID: id, Name: names[id]}, nil
		},
	}
}

func TestExecute_MovesReservationToNewSlot(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	store := newFakeSlotStore(
		makeSlot(1, date, 10, 30),
		makeSlot(5, date.AddDate(0, 0, 1), 0, 20),
	)

	var movedToSlot, movedToType int64
	var changeRec *domain.ChangeRecord

	uc := modifyReservation.NewUseCase(
		&mockReservationRepo{
			getByID: func(ctx context.Context, id int64) (*domain.Reservation, error) {
				return activeReservation(), nil
			},
			updateSlotAndType: func(ctx context.Context, id int64, slotID, visitTypeID int64) error {
				movedToSlot = slotID
				movedToType = visitTypeID
				return nil
			},
		},
		store,
		visitTypes(),
		&mockChangeLogRepo{
			append: func(ctx context.Context, rec *domain.ChangeRecord) (*domain.ChangeRecord, error) {
				changeRec = rec
				return rec, nil
			},
		},
		&mockNotificationRepo{
			append: func(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error) {
				return event, nil
			},
		},
		fakeTxManager{},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &modifyReservation.Request{
		ReservationID:  100,
		NewSlotID:      5,
		NewVisitTypeID: 3,
		Actor:          "admin-17",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), movedToSlot)
	assert.Equal(t, int64(3), movedToType)
	assert.Equal(t, int64(5), resp.SlotID)
	assert.Equal(t, 4, resp.VisitorCount)

	// Места перенесены: старый слот освобождён, новый занят
	assert.Equal(t, 6, store.slots[1].CapacityUsed)
	assert.Equal(t, 4, store.slots[5].CapacityUsed)

	require.NotNil(t, changeRec)
	assert.Equal(t, "admin-17", changeRec.Actor)
	assert.Equal(t, int64(100), changeRec.ReservationID)
}

func TestExecute_TargetFullRestoresOldSlot(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	// В целевом слоте осталось 2 места, а группе нужно 4
	store := newFakeSlotStore(
		makeSlot(1, date, 10, 30),
		makeSlot(5, date.AddDate(0, 0, 1), 18, 20),
	)

	updated := false

	uc := modifyReservation.NewUseCase(
		&mockReservationRepo{
			getByID: func(ctx context.Context, id int64) (*domain.Reservation, error) {
				return activeReservation(), nil
			},
			updateSlotAndType: func(ctx context.Context, id int64, slotID, visitTypeID int64) error {
				updated = true
				return nil
			},
		},
		store,
		visitTypes(),
		&mockChangeLogRepo{
			append: func(ctx context.Context, rec *domain.ChangeRecord) (*domain.ChangeRecord, error) {
				return rec, nil
			},
		},
		&mockNotificationRepo{
			append: func(ctx context.Context, event *domain.NotificationEvent) (*domain.NotificationEvent, error) {
				return event, nil
			},
		},
		fakeTxManager{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &modifyReservation.Request{
		ReservationID:  100,
		NewSlotID:      5,
		NewVisitTypeID: 3,
		Actor:          "admin-17",
	})
	require.ErrorIs(t, err, modifyReservation.ErrCapacityExceeded)

	// Бронь не тронута, счётчики обоих слотов как до операции
	assert.False(t, updated)
	assert.Equal(t, 10, store.slots[1].CapacityUsed)
	assert.Equal(t, 18, store.slots[5].CapacityUsed)
}

func TestExecute_RejectsNonActiveReservation(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusUsed,
		domain.StatusCancelled,
		domain.StatusExpired,
	} {
		t.Run(string(status), func(t *testing.T) {
			res := activeReservation()
			res.Status = status

			uc := modifyReservation.NewUseCase(
				&mockReservationRepo{
					getByID: func(ctx context.Context, id int64) (*domain.Reservation, error) {
						return res, nil
					},
				},
				newFakeSlotStore(),
				visitTypes(),
				&mockChangeLogRepo{},
				&mockNotificationRepo{},
				fakeTxManager{},
				noopLogger{},
			)

			_, err := uc.Execute(context.Background(), &modifyReservation.Request{
				ReservationID:  100,
				NewSlotID:      5,
				NewVisitTypeID: 3,
				Actor:          "admin-17",
			})
			require.ErrorIs(t, err, modifyReservation.ErrInvalidTransition)
		})
	}
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := modifyReservation.NewUseCase(
		&mockReservationRepo{},
		newFakeSlotStore(),
		visitTypes(),
		&mockChangeLogRepo{},
		&mockNotificationRepo{},
		fakeTxManager{},
		noopLogger{},
	)

	tests := []struct {
		name string
		req  *modifyReservation.Request
	}{
		{"zero reservation id", &modifyReservation.Request{NewSlotID: 5, NewVisitTypeID: 3, Actor: "a"}},
		{"zero slot id", &modifyReservation.Request{ReservationID: 1, NewVisitTypeID: 3, Actor: "a"}},
		{"zero visit type id", &modifyReservation.Request{ReservationID: 1, NewSlotID: 5, Actor: "a"}},
		{"empty actor", &modifyReservation.Request{ReservationID: 1, NewSlotID: 5, NewVisitTypeID: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, modifyReservation.ErrInvalidInput)
		})
	}
}
