package get_draft

import "github.com/m04kA/SMC-RentalService/internal/domain"

// DraftStore serves the per-session reservation draft
type DraftStore interface {
	Get(sessionID string) *domain.ReservationDraft
}

// Logger is the logging surface the handler needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
