package domain

import (
	"time"

	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// RentalStatus represents the status of a rental record
type RentalStatus string

const (
	StatusPending   RentalStatus = "pending"
	StatusActive    RentalStatus = "active"
	StatusCompleted RentalStatus = "completed"
	StatusCancelled RentalStatus = "cancelled"
)

// Rental represents a car rental record in the system
type Rental struct {
	ID         int64
	CustomerID int64
	VehicleID  string

	// Denormalized vehicle data for history: the catalog entry may change or
	// be deactivated after the rental is created
	VehicleName string
	PricePerDay float64

	PickupLocationID string
	ReturnLocationID string
	PickupDate       time.Time
	ReturnDate       time.Time
	PickupTime       types.TimeString
	ReturnTime       types.TimeString

	Status     RentalStatus
	TotalPrice float64
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the rental still occupies the vehicle
func (r *Rental) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusActive
}

// CanBeCancelled returns true if the rental can be cancelled
func (r *Rental) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusActive
}

// IsCancelled returns true if the rental has been cancelled
func (r *Rental) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// Days returns the number of charged rental days. Same-day rentals are
// charged as one day.
func (r *Rental) Days() int {
	days := int(r.ReturnDate.Sub(r.PickupDate).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// Overlaps reports whether the rental period intersects [start, end].
func (r *Rental) Overlaps(start, end time.Time) bool {
	return !r.PickupDate.After(end) && !r.ReturnDate.Before(start)
}

// RentalsFilter describes the optional filters for listing rentals
type RentalsFilter struct {
	CustomerID      *int64
	VehicleID       *string
	Status          *RentalStatus
	StartDate       *time.Time
	EndDate         *time.Time
	IncludeInactive bool
}
