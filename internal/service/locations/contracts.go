package locations

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// LocationsRepository is the storage surface the service needs
type LocationsRepository interface {
	GetActive(ctx context.Context) ([]*domain.Location, error)
	GetByState(ctx context.Context, state string) ([]*domain.Location, error)
	GetAll(ctx context.Context) ([]*domain.Location, error)
	GetByID(ctx context.Context, id string) (*domain.Location, error)
	Create(ctx context.Context, loc *domain.Location) (*domain.Location, error)
	Update(ctx context.Context, loc *domain.Location) error
	Delete(ctx context.Context, id string) error
}

// LocationsCache is the cache surface the service needs
type LocationsCache interface {
	Get(ctx context.Context) []*domain.Location
	GetSync() []*domain.Location
	Clear()
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
