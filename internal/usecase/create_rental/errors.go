package create_rental

import "errors"

var (
	// ErrCustomerNotFound is returned when the customer does not exist
	ErrCustomerNotFound = errors.New("create_rental: customer not found")

	// ErrVehicleNotFound is returned when the vehicle does not exist
	ErrVehicleNotFound = errors.New("create_rental: vehicle not found")

	// ErrVehicleInactive is returned when the vehicle is retired from the catalog
	ErrVehicleInactive = errors.New("create_rental: vehicle is not active")

	// ErrVehicleUnavailable is returned when an active rental already occupies
	// the vehicle on an overlapping period
	ErrVehicleUnavailable = errors.New("create_rental: vehicle is not available for the period")

	// ErrInvalidPeriod is returned when the rental period is malformed
	ErrInvalidPeriod = errors.New("create_rental: invalid rental period")

	// ErrInvalidInput is returned on invalid input data
	ErrInvalidInput = errors.New("create_rental: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("create_rental: internal error")
)
