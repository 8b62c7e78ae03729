package vehicles

import "errors"

var (
	// ErrVehicleNotFound is returned when the vehicle does not exist
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrVehicleExists is returned on id collision during creation
	ErrVehicleExists = errors.New("vehicle already exists")

	// ErrInvalidInput is returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("vehicles service: internal error")
)
