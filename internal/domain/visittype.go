package domain

import "time"

// VisitType represents a kind of park visit (guided tour, free visit, ...).
// Name is unique.
type VisitType struct {
	ID          int64
	Name        string
	Description string

	CreatedAt time.Time
}
