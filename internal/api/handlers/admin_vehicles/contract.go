package admin_vehicles

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// VehiclesService manages the catalog from the back office
type VehiclesService interface {
	ListAll(ctx context.Context) ([]*domain.Vehicle, error)
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id string) error
}

// Logger is the logging surface the handler needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
