package submit_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	submitReservation "github.com/m04kA/SMC-RentalService/internal/usecase/submit_reservation"
)

const (
	msgEmptyDraft      = "nenhuma reserva em andamento para enviar"
	msgMissingFields   = "preencha os campos obrigatórios antes de enviar"
	msgVehicleNotFound = "veículo não encontrado, escolha outro veículo"
)

type Handler struct {
	useCase SubmitReservationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservation/submit
// Failures here leave the draft untouched so the customer can correct the
// form and retry.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &submitReservation.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, submitReservation.ErrEmptyDraft):
			handlers.RespondBadRequest(w, msgEmptyDraft)
		case errors.Is(err, submitReservation.ErrMissingFields):
			handlers.RespondBadRequest(w, msgMissingFields)
		case errors.Is(err, submitReservation.ErrVehicleNotFound):
			handlers.RespondError(w, http.StatusConflict, msgVehicleNotFound)
		default:
			h.logger.Error("POST /reservation/submit - submission failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SubmitResponse{
		WhatsappLink: result.Link,
		Persisted:    result.Persisted,
	})
}
