package notifications_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	"github.com/m04kA/Park-ReservationService/internal/service/notifications"
	"github.com/m04kA/Park-ReservationService/internal/service/notifications/models"
)

type mockNotificationRepo struct {
	list func(ctx context.Context, category *string) ([]*domain.NotificationEvent, error)
}

func (m *mockNotificationRepo) List(ctx context.Context, category *string) ([]*domain.NotificationEvent, error) {
	return m.list(ctx, category)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestList_ReturnsEvents(t *testing.T) {
	svc := notifications.NewService(&mockNotificationRepo{
		list: func(ctx context.Context, category *string) ([]*domain.NotificationEvent, error) {
			assert.Nil(t, category)
			return []*domain.NotificationEvent{
				{ID: 2, Category: domain.CategoryCapacityAlert, Message: "alert", SentAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)},
				{ID: 1, Category: domain.CategoryReservationCreated, Message: "created", SentAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
			}, nil
		},
	}, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, int64(2), resp.Notifications[0].ID)
	assert.Equal(t, domain.CategoryCapacityAlert, resp.Notifications[0].Category)
}

func TestList_PassesCategoryFilter(t *testing.T) {
	var seen *string
	svc := notifications.NewService(&mockNotificationRepo{
		list: func(ctx context.Context, category *string) ([]*domain.NotificationEvent, error) {
			seen = category
			return []*domain.NotificationEvent{}, nil
		},
	}, noopLogger{})

	category := domain.CategoryReservationModified
	resp, err := svc.List(context.Background(), &models.ListNotificationsRequest{Category: &category})
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, domain.CategoryReservationModified, *seen)
	assert.Empty(t, resp.Notifications)
}

func TestList_RejectsUnknownCategory(t *testing.T) {
	calls := 0
	svc := notifications.NewService(&mockNotificationRepo{
		list: func(ctx context.Context, category *string) ([]*domain.NotificationEvent, error) {
			calls++
			return nil, nil
		},
	}, noopLogger{})

	bogus := "Weather Alert"
	_, err := svc.List(context.Background(), &models.ListNotificationsRequest{Category: &bogus})
	require.ErrorIs(t, err, notifications.ErrInvalidInput)
	assert.Zero(t, calls)
}
