package admin_rentals

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	createRental "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
)

// RentalsService manages rental records
type RentalsService interface {
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	List(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
	Delete(ctx context.Context, id int64) error
}

// CreateRentalUseCase creates a rental with the availability check
type CreateRentalUseCase interface {
	Execute(ctx context.Context, req *createRental.Request) (*createRental.Response, error)
}

// Logger is the logging surface the handler needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
