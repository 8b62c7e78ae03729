package get_vehicles

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// VehiclesService serves the storefront catalog
type VehiclesService interface {
	ListActive(ctx context.Context) ([]*domain.Vehicle, error)
}

// Logger is the logging surface the handler needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
