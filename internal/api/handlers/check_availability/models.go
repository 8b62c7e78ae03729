package check_availability

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-RentalService/internal/usecase/check_availability"
)

// BusyPeriodResponse is one taken stretch of the requested period
type BusyPeriodResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	VehicleID   string               `json:"vehicleId"`
	Available   bool                 `json:"available"`
	BusyPeriods []BusyPeriodResponse `json:"busyPeriods"`
}

// FromUseCaseResponse converts the use case result to the HTTP model
func FromUseCaseResponse(res *checkAvailability.Response) AvailabilityResponse {
	out := AvailabilityResponse{
		VehicleID:   res.VehicleID,
		Available:   res.Available,
		BusyPeriods: make([]BusyPeriodResponse, 0, len(res.BusyPeriods)),
	}
	for _, p := range res.BusyPeriods {
		out.BusyPeriods = append(out.BusyPeriods, BusyPeriodResponse{
			From: p.From.Format(domain.DateFormat),
			To:   p.To.Format(domain.DateFormat),
		})
	}
	return out
}
