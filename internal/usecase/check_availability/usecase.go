package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	vehiclesRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicles"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

// UseCase answers whether a vehicle is free for a period and which stretches
// of the period are already taken by active rentals.
type UseCase struct {
	rentalRepo  RentalsRepository
	vehicleRepo VehiclesRepository
	logger      Logger
}

// NewUseCase creates the use case
func NewUseCase(rentalRepo RentalsRepository, vehicleRepo VehiclesRepository, logger Logger) *UseCase {
	return &UseCase{
		rentalRepo:  rentalRepo,
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// Execute runs the availability check
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, vehiclesRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CheckAvailability: vehicle id=%s not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CheckAvailability: vehicle lookup failed for id=%s: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: vehicle lookup failed: %v", ErrInternal, err)
	}

	filter := domain.RentalsFilter{
		VehicleID:       ptr.Ptr(req.VehicleID),
		StartDate:       ptr.Ptr(req.StartDate),
		EndDate:         ptr.Ptr(req.EndDate),
		IncludeInactive: false,
	}

	rentals, err := uc.rentalRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckAvailability: rentals lookup failed: %v", err)
		return nil, fmt.Errorf("%w: rentals lookup failed: %v", ErrInternal, err)
	}

	busy := make([]BusyPeriod, 0)
	for _, r := range rentals {
		if !r.IsActive() || !r.Overlaps(req.StartDate, req.EndDate) {
			continue
		}
		busy = append(busy, BusyPeriod{From: r.PickupDate, To: r.ReturnDate})
	}

	return &Response{
		VehicleID:   req.VehicleID,
		Available:   len(busy) == 0,
		BusyPeriods: busy,
	}, nil
}

func validateRequest(req *Request) error {
	if req.VehicleID == "" {
		return fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidPeriod)
	}
	return nil
}
