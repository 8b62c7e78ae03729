package get_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/handlers/get_vehicles"
	vehiclesService "github.com/m04kA/SMC-RentalService/internal/service/vehicles"
)

const msgVehicleNotFound = "veículo não encontrado"

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

// Handle GET /api/v1/vehicles/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	vehicle, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, vehiclesService.ErrVehicleNotFound) {
			handlers.RespondNotFound(w, msgVehicleNotFound)
			return
		}
		h.logger.Error("GET /vehicles/{id} - failed to get vehicle id=%s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, get_vehicles.FromDomain(vehicle))
}
