package check_availability

import "time"

// Request describes the vehicle and period being checked
type Request struct {
	VehicleID string
	StartDate time.Time
	EndDate   time.Time
}

// BusyPeriod is one stretch of days already taken by an active rental
type BusyPeriod struct {
	From time.Time
	To   time.Time
}

// Response reports whether the vehicle is free for the whole period and
// which parts of it are taken.
type Response struct {
	VehicleID   string
	Available   bool
	BusyPeriods []BusyPeriod
}
