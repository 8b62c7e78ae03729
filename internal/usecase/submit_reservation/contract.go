package submit_reservation

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// DraftStore holds the per-session reservation drafts
type DraftStore interface {
	Get(sessionID string) *domain.ReservationDraft
	Clear(sessionID string)
}

// VehiclesRepository resolves catalog entries for the summary message
type VehiclesRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
}

// LocationsCache resolves location names for the summary message
type LocationsCache interface {
	Get(ctx context.Context) []*domain.Location
}

// CustomersRepository persists the customer extracted from the draft
type CustomersRepository interface {
	GetByCPF(ctx context.Context, cpf string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

// RentalsRepository persists the rental record extracted from the draft
type RentalsRepository interface {
	Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
}

// LinkBuilder turns the summary message into a messaging deep link
type LinkBuilder interface {
	Build(text string) string
}

// TransactionManager groups the customer and rental writes
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
