package customers

import "errors"

var (
	// ErrCustomerNotFound is returned when the customer does not exist
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCPFExists is returned when another customer holds the same CPF
	ErrCPFExists = errors.New("customer with this CPF already exists")

	// ErrInvalidInput is returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("customers service: internal error")
)
