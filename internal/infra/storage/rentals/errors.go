package rentals

import "errors"

var (
	// ErrRentalNotFound is returned when the rental does not exist
	ErrRentalNotFound = errors.New("rentals.repository: rental not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("rentals.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("rentals.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("rentals.repository: failed to scan row")
)
