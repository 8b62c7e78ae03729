package admin_customers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	customersService "github.com/m04kA/SMC-RentalService/internal/service/customers"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidID          = "identificador inválido"
	msgInvalidInput       = "dados inválidos"
	msgInvalidBirthDate   = "data de nascimento inválida, esperado YYYY-MM-DD"
	msgCustomerNotFound   = "cliente não encontrado"
	msgCPFExists          = "já existe um cliente com este CPF"
)

type Handler struct {
	service CustomersService
	logger  Logger
}

func NewHandler(service CustomersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/customers
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/customers - failed to list customers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	out := ListResponse{Customers: make([]CustomerResponse, 0, len(customers))}
	for _, c := range customers {
		out.Customers = append(out.Customers, FromDomain(c))
	}
	handlers.RespondJSON(w, http.StatusOK, out)
}

// HandleGet GET /api/v1/admin/customers/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	customer, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, customersService.ErrCustomerNotFound) {
			handlers.RespondNotFound(w, msgCustomerNotFound)
			return
		}
		h.logger.Error("GET /admin/customers/{id} - failed to get customer id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(customer))
}

// HandleCreate POST /api/v1/admin/customers
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	customer, err := req.ToDomain()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBirthDate)
		return
	}

	created, err := h.service.Create(r.Context(), customer)
	if err != nil {
		switch {
		case errors.Is(err, customersService.ErrCPFExists):
			handlers.RespondError(w, http.StatusConflict, msgCPFExists)
		case errors.Is(err, customersService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /admin/customers - failed to create customer: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// HandleUpdate PUT /api/v1/admin/customers/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req CustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	customer, err := req.ToDomain()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBirthDate)
		return
	}
	customer.ID = id

	if err := h.service.Update(r.Context(), customer); err != nil {
		switch {
		case errors.Is(err, customersService.ErrCustomerNotFound):
			handlers.RespondNotFound(w, msgCustomerNotFound)
		case errors.Is(err, customersService.ErrCPFExists):
			handlers.RespondError(w, http.StatusConflict, msgCPFExists)
		case errors.Is(err, customersService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /admin/customers/{id} - failed to update customer id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(customer))
}

// HandleDelete DELETE /api/v1/admin/customers/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, customersService.ErrCustomerNotFound) {
			handlers.RespondNotFound(w, msgCustomerNotFound)
			return
		}
		h.logger.Error("DELETE /admin/customers/{id} - failed to delete customer id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
