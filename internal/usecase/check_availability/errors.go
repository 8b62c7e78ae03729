package check_availability

import "errors"

var (
	// ErrVehicleNotFound is returned when the vehicle does not exist
	ErrVehicleNotFound = errors.New("check_availability: vehicle not found")

	// ErrInvalidPeriod is returned when the requested period is malformed
	ErrInvalidPeriod = errors.New("check_availability: invalid period")

	// ErrInvalidInput is returned on invalid input data
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("check_availability: internal error")
)
