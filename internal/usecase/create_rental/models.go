package create_rental

import (
	"time"

	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// Request carries the data for a new rental record
type Request struct {
	CustomerID       int64
	VehicleID        string
	PickupLocationID string
	ReturnLocationID string
	PickupDate       time.Time
	ReturnDate       time.Time
	PickupTime       types.TimeString
	ReturnTime       types.TimeString
	Notes            *string
}

// Response carries the created rental
type Response struct {
	ID         int64
	CustomerID int64
	VehicleID  string

	// Denormalized catalog data frozen at creation time
	VehicleName string
	PricePerDay float64

	PickupLocationID string
	ReturnLocationID string
	PickupDate       time.Time
	ReturnDate       time.Time
	PickupTime       types.TimeString
	ReturnTime       types.TimeString

	Status     string
	TotalPrice float64
	Days       int
	Notes      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
