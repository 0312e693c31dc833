package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Park-ReservationService/internal/domain"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    domain.ReservationStatus
		to      domain.ReservationStatus
		allowed bool
	}{
		{domain.StatusActive, domain.StatusUsed, true},
		{domain.StatusActive, domain.StatusCancelled, true},
		{domain.StatusActive, domain.StatusExpired, true},
		{domain.StatusActive, domain.StatusActive, false},

		// Терминальные статусы не допускают переходов
		{domain.StatusUsed, domain.StatusActive, false},
		{domain.StatusUsed, domain.StatusCancelled, false},
		{domain.StatusCancelled, domain.StatusActive, false},
		{domain.StatusCancelled, domain.StatusUsed, false},
		{domain.StatusExpired, domain.StatusActive, false},
		{domain.StatusExpired, domain.StatusUsed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			res := domain.Reservation{Status: tt.from}
			assert.Equal(t, tt.allowed, res.Status.CanTransitionTo(tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, domain.StatusActive.IsTerminal())
	assert.True(t, domain.StatusUsed.IsTerminal())
	assert.True(t, domain.StatusCancelled.IsTerminal())
	assert.True(t, domain.StatusExpired.IsTerminal())
}

func TestCountsTowardCapacity(t *testing.T) {
	assert.True(t, domain.StatusActive.CountsTowardCapacity())
	assert.True(t, domain.StatusUsed.CountsTowardCapacity())
	assert.False(t, domain.StatusCancelled.CountsTowardCapacity())
	assert.False(t, domain.StatusExpired.CountsTowardCapacity())
}

func TestReservationLifecycleChecks(t *testing.T) {
	active := domain.Reservation{Status: domain.StatusActive}
	assert.True(t, active.IsActive())
	assert.True(t, active.CanBeConfirmed())
	assert.True(t, active.CanBeCancelled())
	assert.True(t, active.CanBeModified())

	for _, status := range []domain.ReservationStatus{
		domain.StatusUsed,
		domain.StatusCancelled,
		domain.StatusExpired,
	} {
		res := domain.Reservation{Status: status}
		assert.False(t, res.IsActive(), status)
		assert.False(t, res.CanBeConfirmed(), status)
		assert.False(t, res.CanBeCancelled(), status)
		assert.False(t, res.CanBeModified(), status)
	}
}

func TestSlotAvailability(t *testing.T) {
	s := domain.Slot{CapacityMax: 30, CapacityUsed: 27}

	assert.Equal(t, 3, s.Available())
	assert.True(t, s.CanFit(3))
	assert.False(t, s.CanFit(4))
	assert.False(t, s.IsFull())

	s.CapacityUsed = 30
	assert.True(t, s.IsFull())
	assert.True(t, s.CanFit(0))
	assert.False(t, s.CanFit(1))
}
