package admin_rentals

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalsService "github.com/m04kA/SMC-RentalService/internal/service/rentals"
	createRental "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidID          = "identificador inválido"
	msgInvalidDates       = "datas inválidas, esperado YYYY-MM-DD"
	msgInvalidFilter      = "filtro inválido"
	msgInvalidStatus      = "status inválido"
	msgInvalidTransition  = "transição de status não permitida"
	msgInvalidPeriod      = "período de locação inválido"
	msgRentalNotFound     = "locação não encontrada"
	msgCustomerNotFound   = "cliente não encontrado"
	msgVehicleNotFound    = "veículo não encontrado"
	msgVehicleInactive    = "veículo indisponível no catálogo"
	msgVehicleUnavailable = "veículo já reservado no período informado"
	msgCannotCancel       = "locação não pode mais ser cancelada"
)

var validStatuses = map[string]domain.RentalStatus{
	string(domain.StatusPending):   domain.StatusPending,
	string(domain.StatusActive):    domain.StatusActive,
	string(domain.StatusCompleted): domain.StatusCompleted,
	string(domain.StatusCancelled): domain.StatusCancelled,
}

type Handler struct {
	service       RentalsService
	createUseCase CreateRentalUseCase
	logger        Logger
}

func NewHandler(service RentalsService, createUseCase CreateRentalUseCase, logger Logger) *Handler {
	return &Handler{
		service:       service,
		createUseCase: createUseCase,
		logger:        logger,
	}
}

// HandleList GET /api/v1/admin/rentals
// Optional query filters: customerId, vehicleId, status, startDate, endDate,
// includeInactive.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	rentals, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /admin/rentals - failed to list rentals: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	out := ListResponse{Rentals: make([]RentalResponse, 0, len(rentals))}
	for _, rental := range rentals {
		out.Rentals = append(out.Rentals, FromDomain(rental))
	}
	handlers.RespondJSON(w, http.StatusOK, out)
}

// HandleGet GET /api/v1/admin/rentals/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	rental, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, rentalsService.ErrRentalNotFound) {
			handlers.RespondNotFound(w, msgRentalNotFound)
			return
		}
		h.logger.Error("GET /admin/rentals/{id} - failed to get rental id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(rental))
}

// HandleCreate POST /api/v1/admin/rentals
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRentalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.createUseCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createRental.ErrVehicleUnavailable):
			handlers.RespondError(w, http.StatusConflict, msgVehicleUnavailable)
		case errors.Is(err, createRental.ErrCustomerNotFound):
			handlers.RespondNotFound(w, msgCustomerNotFound)
		case errors.Is(err, createRental.ErrVehicleNotFound):
			handlers.RespondNotFound(w, msgVehicleNotFound)
		case errors.Is(err, createRental.ErrVehicleInactive):
			handlers.RespondError(w, http.StatusConflict, msgVehicleInactive)
		case errors.Is(err, createRental.ErrInvalidPeriod):
			handlers.RespondBadRequest(w, msgInvalidPeriod)
		case errors.Is(err, createRental.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		default:
			h.logger.Error("POST /admin/rentals - failed to create rental: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// HandleUpdateStatus PATCH /api/v1/admin/rentals/{id}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	status, ok := validStatuses[req.Status]
	if !ok {
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, status); err != nil {
		switch {
		case errors.Is(err, rentalsService.ErrRentalNotFound):
			handlers.RespondNotFound(w, msgRentalNotFound)
		case errors.Is(err, rentalsService.ErrInvalidTransition):
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)
		default:
			h.logger.Error("PATCH /admin/rentals/{id}/status - failed for rental id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}

// HandleCancel POST /api/v1/admin/rentals/{id}/cancel
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Cancel(r.Context(), id, req.Reason); err != nil {
		switch {
		case errors.Is(err, rentalsService.ErrRentalNotFound):
			handlers.RespondNotFound(w, msgRentalNotFound)
		case errors.Is(err, rentalsService.ErrCannotCancel):
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)
		default:
			h.logger.Error("POST /admin/rentals/{id}/cancel - failed for rental id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}

// HandleDelete DELETE /api/v1/admin/rentals/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, rentalsService.ErrRentalNotFound) {
			handlers.RespondNotFound(w, msgRentalNotFound)
			return
		}
		h.logger.Error("DELETE /admin/rentals/{id} - failed for rental id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func parseFilter(r *http.Request) (domain.RentalsFilter, error) {
	var filter domain.RentalsFilter
	q := r.URL.Query()

	if v := q.Get("customerId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.CustomerID = &id
	}
	if v := q.Get("vehicleId"); v != "" {
		filter.VehicleID = &v
	}
	if v := q.Get("status"); v != "" {
		status, ok := validStatuses[v]
		if !ok {
			return filter, errors.New("unknown status")
		}
		filter.Status = &status
	}
	if v := q.Get("startDate"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &date
	}
	if v := q.Get("endDate"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &date
	}
	filter.IncludeInactive = q.Get("includeInactive") == "true"

	return filter, nil
}
