package create_reservation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createReservationHandler "github.com/m04kA/Park-ReservationService/internal/api/handlers/create_reservation"
	createReservation "github.com/m04kA/Park-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/Park-ReservationService/pkg/types"
)

type mockUseCase struct {
	execute func(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	return m.execute(ctx, req)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

const validBody = `{
	"nationalId": "12345678-9",
	"name": "Maria",
	"age": 34,
	"slotId": 7,
	"visitTypeId": 2,
	"companions": [
		{"nationalId": "11111111-1", "name": "Pablo", "age": 10}
	]
}`

func TestHandle_Created(t *testing.T) {
	start, _ := types.NewTimeStringFromString("10:00")
	end, _ := types.NewTimeStringFromString("12:00")

	handler := createReservationHandler.NewHandler(&mockUseCase{
		execute: func(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
			assert.Equal(t, "12345678-9", req.NationalID)
			assert.Len(t, req.Companions, 1)
			return &createReservation.Response{
				ID:            100,
				VisitorID:     42,
				SlotID:        req.SlotID,
				VisitTypeID:   req.VisitTypeID,
				VisitorCount:  2,
				Status:        "active",
				SlotDate:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
				SlotStartTime: start,
				SlotEndTime:   end,
				VisitTypeName: "Guided tour",
			}, nil
		},
	}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp createReservationHandler.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, 2, resp.VisitorCount)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "2026-03-15", resp.SlotDate)
	assert.Equal(t, "10:00", resp.SlotStartTime)
}

func TestHandle_CapacityExceededConflict(t *testing.T) {
	handler := createReservationHandler.NewHandler(&mockUseCase{
		execute: func(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
			return nil, createReservation.ErrCapacityExceeded
		},
	}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_SlotNotFound(t *testing.T) {
	handler := createReservationHandler.NewHandler(&mockUseCase{
		execute: func(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
			return nil, createReservation.ErrSlotNotFound
		},
	}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	handler := createReservationHandler.NewHandler(&mockUseCase{
		execute: func(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
			t.Fatal("use case must not be called")
			return nil, nil
		},
	}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidInputBadRequest(t *testing.T) {
	handler := createReservationHandler.NewHandler(&mockUseCase{
		execute: func(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
			return nil, createReservation.ErrInvalidInput
		},
	}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
