package domain

import "time"

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusUsed      ReservationStatus = "used"
	StatusCancelled ReservationStatus = "cancelled"
	StatusExpired   ReservationStatus = "expired"
)

// allowedTransitions is the single source of truth for the reservation
// state machine. Every lifecycle operation must consult it; states without
// an entry are terminal.
var allowedTransitions = map[ReservationStatus][]ReservationStatus{
	StatusActive: {StatusUsed, StatusCancelled, StatusExpired},
}

// CanTransitionTo returns true if the status can move to target
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no transition leaves this status
func (s ReservationStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// CountsTowardCapacity returns true if a reservation in this status
// holds spots in its slot's capacity counter
func (s ReservationStatus) CountsTowardCapacity() bool {
	return s == StatusActive || s == StatusUsed
}

// Reservation represents a park visit booked against one slot
type Reservation struct {
	ID           int64
	VisitorID    int64
	SlotID       int64
	VisitTypeID  int64
	VisitorCount int // primary visitor + companions, fixed at booking time
	Status       ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation is in the active state
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// CanBeConfirmed returns true if the reservation can transition to used
func (r *Reservation) CanBeConfirmed() bool {
	return r.Status.CanTransitionTo(StatusUsed)
}

// CanBeCancelled returns true if the reservation can transition to cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status.CanTransitionTo(StatusCancelled)
}

// CanBeModified returns true if the slot or visit type can still be swapped.
// Only active reservations are modifiable; used, cancelled and expired
// reservations are historical records.
func (r *Reservation) CanBeModified() bool {
	return r.Status == StatusActive
}

// ReservationFilter filters reservation listings and metric computations
type ReservationFilter struct {
	DateFrom        *time.Time         // start of slot-date range (inclusive, optional)
	DateTo          *time.Time         // end of slot-date range (inclusive, optional)
	Status          *ReservationStatus // exact status (optional)
	VisitTypeID     *int64             // filter by visit type (optional)
	IncludeInactive bool               // include cancelled and expired reservations
}
