package get_locations

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// LocationsService serves the storefront location list
type LocationsService interface {
	List(ctx context.Context, state *string) []*domain.Location
}

// Logger is the logging surface the handler needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
