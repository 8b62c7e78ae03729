package admin_customers

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CustomersService manages customer records from the back office
type CustomersService interface {
	List(ctx context.Context) ([]*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging surface the handler needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
