package rentals

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RentalsRepository is the storage surface the service needs
type RentalsRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	GetWithFilter(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
