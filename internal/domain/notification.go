package domain

import "time"

// Notification event categories
const (
	CategoryReservationCreated  = "Reservation Created"
	CategoryReservationModified = "Reservation Modified"
	CategoryCapacityAlert       = "Capacity Alert"
)

// NotificationEvent is a process-wide append-only log entry of a system
// event. Delivery is external; only storage is guaranteed. SentAt is
// assigned by the server at insert time.
type NotificationEvent struct {
	ID       int64
	Category string
	Message  string
	SentAt   time.Time
}
