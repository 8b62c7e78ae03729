package lookup_cep

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/integrations/viacep"
)

// CEPClient resolves a postal code to an address
type CEPClient interface {
	Lookup(ctx context.Context, cep string) (*viacep.Address, error)
}

// Logger is the logging surface the handler needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
