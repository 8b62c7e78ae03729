package create_rental

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	customersRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/customers"
	vehiclesRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicles"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

// UseCase creates a rental record from the back office.
// The availability check and the insert run in one serializable transaction
// so two concurrent creations for the same vehicle cannot both pass the
// overlap check.
type UseCase struct {
	rentalRepo   RentalsRepository
	vehicleRepo  VehiclesRepository
	customerRepo CustomersRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(
	rentalRepo RentalsRepository,
	vehicleRepo VehiclesRepository,
	customerRepo CustomersRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		rentalRepo:   rentalRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute creates the rental
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRental: customer=%d, vehicle=%s, pickup=%s, return=%s",
		req.CustomerID, req.VehicleID,
		req.PickupDate.Format(domain.DateFormat), req.ReturnDate.Format(domain.DateFormat))

	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateRental: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customersRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateRental: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateRental: customer lookup failed for id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: customer lookup failed: %v", ErrInternal, err)
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehiclesRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CreateRental: vehicle id=%s not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateRental: vehicle lookup failed for id=%s: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: vehicle lookup failed: %v", ErrInternal, err)
	}
	if !vehicle.Active {
		uc.logger.Warn("CreateRental: vehicle id=%s is inactive", req.VehicleID)
		return nil, ErrVehicleInactive
	}

	var result *domain.Rental

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Active rentals overlapping the requested period, locked FOR UPDATE
		// by the repository while inside the transaction.
		filter := domain.RentalsFilter{
			VehicleID:       ptr.Ptr(req.VehicleID),
			StartDate:       ptr.Ptr(req.PickupDate),
			EndDate:         ptr.Ptr(req.ReturnDate),
			IncludeInactive: false,
		}

		overlapping, err := uc.rentalRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateRental: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		for _, r := range overlapping {
			if r.IsActive() && r.Overlaps(req.PickupDate, req.ReturnDate) {
				uc.logger.Warn("CreateRental: vehicle id=%s occupied by rental id=%d", req.VehicleID, r.ID)
				return ErrVehicleUnavailable
			}
		}

		rental := &domain.Rental{
			CustomerID:       req.CustomerID,
			VehicleID:        req.VehicleID,
			VehicleName:      vehicle.Name,
			PricePerDay:      vehicle.PricePerDay,
			PickupLocationID: req.PickupLocationID,
			ReturnLocationID: req.ReturnLocationID,
			PickupDate:       req.PickupDate,
			ReturnDate:       req.ReturnDate,
			PickupTime:       req.PickupTime,
			ReturnTime:       req.ReturnTime,
			Status:           domain.StatusPending,
			Notes:            req.Notes,
		}
		rental.TotalPrice = float64(rental.Days()) * vehicle.PricePerDay

		created, err := uc.rentalRepo.Create(txCtx, rental)
		if err != nil {
			uc.logger.Error("CreateRental: insert failed: %v", err)
			return fmt.Errorf("%w: insert failed: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateRental: created rental id=%d, total=%.2f", result.ID, result.TotalPrice)

	return &Response{
		ID:               result.ID,
		CustomerID:       result.CustomerID,
		VehicleID:        result.VehicleID,
		VehicleName:      result.VehicleName,
		PricePerDay:      result.PricePerDay,
		PickupLocationID: result.PickupLocationID,
		ReturnLocationID: result.ReturnLocationID,
		PickupDate:       result.PickupDate,
		ReturnDate:       result.ReturnDate,
		PickupTime:       result.PickupTime,
		ReturnTime:       result.ReturnTime,
		Status:           string(result.Status),
		TotalPrice:       result.TotalPrice,
		Days:             result.Days(),
		Notes:            result.Notes,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}
