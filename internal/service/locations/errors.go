package locations

import "errors"

var (
	// ErrLocationNotFound is returned when the location does not exist
	ErrLocationNotFound = errors.New("location not found")

	// ErrLocationExists is returned on id collision during creation
	ErrLocationExists = errors.New("location already exists")

	// ErrInvalidInput is returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("locations service: internal error")
)
