package admin_logout

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

type Handler struct {
	auth   AuthService
	logger Logger
}

func NewHandler(auth AuthService, logger Logger) *Handler {
	return &Handler{
		auth:   auth,
		logger: logger,
	}
}

// Handle POST /api/v1/admin/logout
// Revoking an already-gone session still answers 204: logout is idempotent.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		handlers.RespondNoContent(w)
		return
	}

	if err := h.auth.Logout(r.Context(), strings.TrimSpace(parts[1])); err != nil {
		h.logger.Error("POST /admin/logout - logout failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}
