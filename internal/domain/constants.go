package domain

// Business validation constants
const (
	MinVisitorCount = 1
	MaxVisitorCount = 50 // one booking cannot claim more spots than this

	MinCapacityMax = 0
	MaxCapacityMax = 10000

	MaxNameLength        = 60
	MaxNationalIDLength  = 11
	MaxPhoneLength       = 15
	MaxEmailLength       = 35
	MaxDescriptionLength = 200
	MaxMessageLength     = 400

	MinAge = 0
	MaxAge = 130
)

// Occupancy reporting constants
const (
	// OccupancyAlertThreshold percentage above which a capacity alert is raised
	OccupancyAlertThreshold = 80

	// TopDatesLimit number of busiest dates included in the occupancy report
	TopDatesLimit = 5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых бронь удерживает места в слоте.
// Используется при подсчёте метрик загруженности.
var ActiveStatuses = []ReservationStatus{
	StatusActive,
	StatusUsed,
}

// InactiveStatuses статусы, при которых места уже возвращены слоту
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusExpired,
}
