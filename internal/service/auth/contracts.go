package auth

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// AdminsRepository is the storage surface the service needs
type AdminsRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	GetUserByID(ctx context.Context, id int64) (*domain.AdminUser, error)
	GetGrant(ctx context.Context, userID int64) (*domain.AdminGrant, error)
}

// SessionStore issues and resolves admin session tokens
type SessionStore interface {
	Create(ctx context.Context, userID int64) (string, error)
	Get(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
