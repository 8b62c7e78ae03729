package vehicles

import "errors"

var (
	// ErrVehicleNotFound is returned when the vehicle does not exist
	ErrVehicleNotFound = errors.New("vehicles.repository: vehicle not found")

	// ErrVehicleExists is returned on id collision during creation
	ErrVehicleExists = errors.New("vehicles.repository: vehicle already exists")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("vehicles.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("vehicles.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("vehicles.repository: failed to scan row")
)
