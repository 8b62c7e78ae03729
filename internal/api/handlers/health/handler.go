// Package health exposes the liveness probe.
package health

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

// Pinger reports whether the backing database is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
