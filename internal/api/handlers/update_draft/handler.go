package update_draft

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
)

const msgInvalidRequestBody = "corpo da requisição inválido"

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

// Handle PATCH /api/v1/reservation/draft
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	var req UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservation/draft - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft := h.drafts.Update(sessionID, req.ToPatch())
	handlers.RespondJSON(w, http.StatusOK, draft)
}

// HandleClear DELETE /api/v1/reservation/draft
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	h.drafts.Clear(sessionID)
	handlers.RespondNoContent(w)
}
