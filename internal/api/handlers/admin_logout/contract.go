package admin_logout

import "context"

// AuthService revokes session tokens
type AuthService interface {
	Logout(ctx context.Context, token string) error
}

// Logger is the logging surface the handler needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
