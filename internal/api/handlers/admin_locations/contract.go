package admin_locations

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// LocationsService manages the location list from the back office
type LocationsService interface {
	ListAll(ctx context.Context) ([]*domain.Location, error)
	Create(ctx context.Context, loc *domain.Location) (*domain.Location, error)
	Update(ctx context.Context, loc *domain.Location) error
	Delete(ctx context.Context, id string) error
}

// Logger is the logging surface the handler needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
