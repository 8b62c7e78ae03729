package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	authService "github.com/m04kA/SMC-RentalService/internal/service/auth"
)

const (
	msgMissingToken  = "token de autenticação ausente"
	msgInvalidToken  = "sessão inválida ou expirada"
	msgNotAuthorized = "acesso administrativo negado"
)

// Authorizer resolves a session token to an admin user
type Authorizer interface {
	Authorize(ctx context.Context, token string) (*domain.AdminUser, error)
}

// Logger is the logging surface the middleware needs
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type adminCtxKey struct{}

// AdminAuth gates the back-office routes. The allow-list is re-checked on
// every request by the auth service, so a revoked grant takes effect
// immediately.
func AdminAuth(auth Authorizer, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			user, err := auth.Authorize(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, authService.ErrSessionInvalid):
					handlers.RespondUnauthorized(w, msgInvalidToken)
				case errors.Is(err, authService.ErrNotAuthorized):
					logger.Warn("AdminAuth: %s %s - access denied", r.Method, r.URL.Path)
					handlers.RespondForbidden(w, msgNotAuthorized)
				default:
					logger.Error("AdminAuth: %s %s - authorization failed: %v", r.Method, r.URL.Path, err)
					handlers.RespondInternalError(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), adminCtxKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminUser returns the authorized admin from the context
func GetAdminUser(ctx context.Context) *domain.AdminUser {
	if user, ok := ctx.Value(adminCtxKey{}).(*domain.AdminUser); ok {
		return user
	}
	return nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
