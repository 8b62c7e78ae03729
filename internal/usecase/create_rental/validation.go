package create_rental

import (
	"fmt"
	"time"
)

// validateRequest checks the request shape and the rental period
func validateRequest(req *Request, now time.Time) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}
	if req.VehicleID == "" {
		return fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}
	if req.PickupLocationID == "" {
		return fmt.Errorf("%w: pickupLocationID is required", ErrInvalidInput)
	}
	if req.ReturnLocationID == "" {
		return fmt.Errorf("%w: returnLocationID is required", ErrInvalidInput)
	}
	if req.PickupDate.IsZero() || req.ReturnDate.IsZero() {
		return fmt.Errorf("%w: pickup and return dates are required", ErrInvalidInput)
	}

	if !req.PickupTime.IsZero() {
		if err := req.PickupTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid pickupTime: %v", ErrInvalidInput, err)
		}
	}
	if !req.ReturnTime.IsZero() {
		if err := req.ReturnTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid returnTime: %v", ErrInvalidInput, err)
		}
	}

	if req.ReturnDate.Before(req.PickupDate) {
		return fmt.Errorf("%w: return date is before pickup date", ErrInvalidPeriod)
	}

	if isDateInPast(req.PickupDate, now) {
		return fmt.Errorf("%w: pickup date is in the past", ErrInvalidPeriod)
	}

	return nil
}

// isDateInPast compares calendar days, ignoring the time of day
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
