package admin_vehicles

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	vehiclesService "github.com/m04kA/SMC-RentalService/internal/service/vehicles"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidInput       = "dados inválidos"
	msgVehicleNotFound    = "veículo não encontrado"
	msgVehicleExists      = "já existe um veículo com este identificador"
)

type Handler struct {
	service VehiclesService
	logger  Logger
}

func NewHandler(service VehiclesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/vehicles
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/vehicles - failed to list vehicles: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	out := ListResponse{Vehicles: make([]VehicleResponse, 0, len(vehicles))}
	for _, v := range vehicles {
		out.Vehicles = append(out.Vehicles, FromDomain(v))
	}
	handlers.RespondJSON(w, http.StatusOK, out)
}

// HandleGet GET /api/v1/admin/vehicles/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	vehicle, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, vehiclesService.ErrVehicleNotFound) {
			handlers.RespondNotFound(w, msgVehicleNotFound)
			return
		}
		h.logger.Error("GET /admin/vehicles/{id} - failed to get vehicle id=%s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(vehicle))
}

// HandleCreate POST /api/v1/admin/vehicles
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req VehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, vehiclesService.ErrVehicleExists):
			handlers.RespondError(w, http.StatusConflict, msgVehicleExists)
		case errors.Is(err, vehiclesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /admin/vehicles - failed to create vehicle: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// HandleUpdate PUT /api/v1/admin/vehicles/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req VehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	vehicle := req.ToDomain()
	vehicle.ID = id

	if err := h.service.Update(r.Context(), vehicle); err != nil {
		switch {
		case errors.Is(err, vehiclesService.ErrVehicleNotFound):
			handlers.RespondNotFound(w, msgVehicleNotFound)
		case errors.Is(err, vehiclesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /admin/vehicles/{id} - failed to update vehicle id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(vehicle))
}

// HandleDelete DELETE /api/v1/admin/vehicles/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, vehiclesService.ErrVehicleNotFound) {
			handlers.RespondNotFound(w, msgVehicleNotFound)
			return
		}
		h.logger.Error("DELETE /admin/vehicles/{id} - failed to delete vehicle id=%s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}
