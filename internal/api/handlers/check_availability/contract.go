package check_availability

import (
	"context"

	checkAvailability "github.com/m04kA/SMC-RentalService/internal/usecase/check_availability"
)

// CheckAvailabilityUseCase runs the availability check
type CheckAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
}

// Logger is the logging surface the handler needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
