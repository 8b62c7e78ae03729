package admin_login

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// AuthService verifies credentials and issues session tokens
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.AdminUser, error)
}

// Logger is the logging surface the handler needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
