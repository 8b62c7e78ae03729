package get_draft

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
)

type Handler struct {
	drafts DraftStore
	logger Logger
}

func NewHandler(drafts DraftStore, logger Logger) *Handler {
	return &Handler{
		drafts: drafts,
		logger: logger,
	}
}

// Handle GET /api/v1/reservation/draft
// A session without a draft gets an empty one, never a 404: the form always
// starts from an empty state.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	handlers.RespondJSON(w, http.StatusOK, h.drafts.Get(sessionID))
}
