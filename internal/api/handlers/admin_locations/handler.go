package admin_locations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	locationsService "github.com/m04kA/SMC-RentalService/internal/service/locations"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidInput       = "dados inválidos"
	msgLocationNotFound   = "local não encontrado"
	msgLocationExists     = "já existe um local com este identificador"
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

// HandleList GET /api/v1/admin/locations
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	locations, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/locations - failed to list locations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	out := ListResponse{Locations: make([]LocationResponse, 0, len(locations))}
	for _, loc := range locations {
		out.Locations = append(out.Locations, FromDomain(loc))
	}
	handlers.RespondJSON(w, http.StatusOK, out)
}

// HandleCreate POST /api/v1/admin/locations
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req LocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, locationsService.ErrLocationExists):
			handlers.RespondError(w, http.StatusConflict, msgLocationExists)
		case errors.Is(err, locationsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /admin/locations - failed to create location: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// HandleUpdate PUT /api/v1/admin/locations/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req LocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	loc := req.ToDomain()
	loc.ID = id

	if err := h.service.Update(r.Context(), loc); err != nil {
		switch {
		case errors.Is(err, locationsService.ErrLocationNotFound):
			handlers.RespondNotFound(w, msgLocationNotFound)
		case errors.Is(err, locationsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /admin/locations/{id} - failed to update location id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(loc))
}

// HandleDelete DELETE /api/v1/admin/locations/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, locationsService.ErrLocationNotFound) {
			handlers.RespondNotFound(w, msgLocationNotFound)
			return
		}
		h.logger.Error("DELETE /admin/locations/{id} - failed to delete location id=%s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}
