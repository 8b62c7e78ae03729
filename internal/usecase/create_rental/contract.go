package create_rental

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RentalsRepository is the storage surface the use case needs
type RentalsRepository interface {
	Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	GetWithFilter(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error)
}

// VehiclesRepository resolves the catalog entry being rented
type VehiclesRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
}

// CustomersRepository resolves the renting customer
type CustomersRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// TransactionManager runs the availability check and the insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
