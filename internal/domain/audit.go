package domain

import "time"

// ChangeRecord is an append-only audit entry describing a reservation
// modification. Owned by the reservation, cascade-deleted with it.
// The description is free text mentioning the old and new slot, visit
// type and visitor count.
type ChangeRecord struct {
	ID            int64
	ReservationID int64
	Actor         string
	Description   string

	CreatedAt time.Time
}
