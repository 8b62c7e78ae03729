package update_draft

import "github.com/m04kA/SMC-RentalService/internal/domain"

// DraftStore merges partial updates into the per-session draft
type DraftStore interface {
	Update(sessionID string, patch *domain.ReservationDraft) *domain.ReservationDraft
	Clear(sessionID string)
}

// Logger is the logging surface the handler needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
