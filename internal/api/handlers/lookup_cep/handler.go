package lookup_cep

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/integrations/viacep"
	"github.com/m04kA/SMC-RentalService/pkg/brdoc"
)

const (
	msgInvalidCEP  = "CEP inválido, informe 8 dígitos"
	msgCEPNotFound = "CEP não encontrado"
)

type Handler struct {
	client CEPClient
	logger Logger
}

func NewHandler(client CEPClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/v1/cep/{cep}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["cep"]
	cep := brdoc.Digits(raw)

	if !brdoc.IsValidCEP(cep) {
		handlers.RespondBadRequest(w, msgInvalidCEP)
		return
	}

	addr, err := h.client.Lookup(r.Context(), cep)
	if err != nil {
		switch {
		case errors.Is(err, viacep.ErrCEPNotFound):
			h.logger.Info("GET /cep - CEP not found: %s", cep)
			handlers.RespondNotFound(w, msgCEPNotFound)
		case errors.Is(err, viacep.ErrInvalidCEP):
			handlers.RespondBadRequest(w, msgInvalidCEP)
		default:
			h.logger.Error("GET /cep - lookup failed for %s: %v", cep, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromAddress(cep, addr))
}
