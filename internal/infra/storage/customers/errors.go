package customers

import "errors"

var (
	// ErrCustomerNotFound is returned when the customer does not exist
	ErrCustomerNotFound = errors.New("customers.repository: customer not found")

	// ErrCPFExists is returned when another customer already uses the CPF
	ErrCPFExists = errors.New("customers.repository: cpf already registered")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("customers.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("customers.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("customers.repository: failed to scan row")
)
