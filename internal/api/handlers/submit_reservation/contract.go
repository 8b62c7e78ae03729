package submit_reservation

import (
	"context"

	submitReservation "github.com/m04kA/SMC-RentalService/internal/usecase/submit_reservation"
)

// SubmitReservationUseCase runs the submission pipeline
type SubmitReservationUseCase interface {
	Execute(ctx context.Context, req *submitReservation.Request) (*submitReservation.Response, error)
}

// Logger is the logging surface the handler needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
