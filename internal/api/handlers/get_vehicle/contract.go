package get_vehicle

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// VehiclesService resolves one catalog entry
type VehiclesService interface {
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
}

// Logger is the logging surface the handler needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
