package locations

import "errors"

var (
	// ErrLocationNotFound is returned when the location does not exist
	ErrLocationNotFound = errors.New("locations.repository: location not found")

	// ErrLocationExists is returned on id collision during creation
	ErrLocationExists = errors.New("locations.repository: location already exists")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("locations.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("locations.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("locations.repository: failed to scan row")
)
