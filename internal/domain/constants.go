package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNameLength               = 255
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	StateLength                 = 2
)

// InactiveStatuses lists the rental statuses that no longer occupy a vehicle.
// Used when counting availability conflicts.
var InactiveStatuses = []RentalStatus{
	StatusCompleted,
	StatusCancelled,
}

// ActiveStatuses lists the rental statuses that occupy a vehicle.
var ActiveStatuses = []RentalStatus{
	StatusPending,
	StatusActive,
}
