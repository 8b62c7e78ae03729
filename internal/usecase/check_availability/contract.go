package check_availability

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RentalsRepository is the storage surface the use case needs
type RentalsRepository interface {
	GetWithFilter(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error)
}

// VehiclesRepository resolves the catalog entry being checked
type VehiclesRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
