// Package middleware holds the HTTP middleware chain: storefront session
// propagation, admin authorization, and request metrics.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SessionHeader carries the storefront session id. The browser generates it
// once per visit; requests without one get a fresh id so the draft flow
// still works, they just will not share state across requests.
const SessionHeader = "X-Session-ID"

type sessionCtxKey struct{}

// Session extracts the storefront session id into the request context
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
			w.Header().Set(SessionHeader, sessionID)
		}

		ctx := context.WithValue(r.Context(), sessionCtxKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID returns the storefront session id from the context
func GetSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionCtxKey{}).(string); ok {
		return id
	}
	return ""
}
