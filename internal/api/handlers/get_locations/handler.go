package get_locations

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

type Handler struct {
	service LocationsService
	logger  Logger
}

func NewHandler(service LocationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations
// The service never fails this read: a broken store yields the cached or
// fallback list, so the handler has no error branch.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var state *string
	if s := r.URL.Query().Get("state"); s != "" {
		state = &s
	}

	locations := h.service.List(r.Context(), state)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(locations))
}
