package domain

import (
	"time"

	"github.com/m04kA/Park-ReservationService/pkg/types"
)

// Slot represents a bookable park time window with a capacity ceiling.
// Identity is the (SlotDate, StartTime) pair, unique across the table.
// CapacityUsed is mutated only through the slot repository's Reserve and
// Release operations; the invariant 0 <= CapacityUsed <= CapacityMax holds
// at all times.
type Slot struct {
	ID           int64
	SlotDate     time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	CapacityMax  int
	CapacityUsed int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Available returns the number of spots still free in the slot
func (s *Slot) Available() int {
	return s.CapacityMax - s.CapacityUsed
}

// CanFit returns true if count visitors still fit into the slot
func (s *Slot) CanFit(count int) bool {
	return s.CapacityUsed+count <= s.CapacityMax
}

// IsFull returns true if the slot has no available spots
func (s *Slot) IsFull() bool {
	return s.Available() <= 0
}

// Label returns a human-readable identifier of the slot,
// used in audit descriptions and notification messages
func (s *Slot) Label() string {
	return s.SlotDate.Format(DateFormat) + " " + s.StartTime.String() + "-" + s.EndTime.String()
}
