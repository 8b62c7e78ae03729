package admins

import "errors"

var (
	// ErrUserNotFound is returned when no credential matches the email
	ErrUserNotFound = errors.New("admins.repository: user not found")

	// ErrNotAllowListed is returned when the user has no admins row
	ErrNotAllowListed = errors.New("admins.repository: user is not allow-listed")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("admins.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("admins.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("admins.repository: failed to scan row")
)
