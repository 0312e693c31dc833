package domain

import "time"

// Visitor represents the primary visitor of a reservation.
// Identity is the surrogate ID; the national id (RUT) is a unique
// attribute used as the upsert key, not the relation's join key.
type Visitor struct {
	ID         int64
	NationalID string
	Name       string
	Surname    string
	Phone      string
	Email      string
	Age        int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Companion represents an additional visitor attached to the primary
// visitor of a reservation. Owned by the visitor, cascade-deleted with it.
type Companion struct {
	ID         int64
	VisitorID  int64
	NationalID string
	Name       string
	Age        int

	CreatedAt time.Time
}
