package rentals

import "errors"

var (
	// ErrRentalNotFound is returned when the rental does not exist
	ErrRentalNotFound = errors.New("rental not found")

	// ErrInvalidTransition is returned on a status change the lifecycle forbids
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCannotCancel is returned when the rental is already finished
	ErrCannotCancel = errors.New("rental cannot be cancelled")

	// ErrInvalidInput is returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("rentals service: internal error")
)
