package submit_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	vehiclesRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicles"
)

// UseCase runs the reservation submission pipeline. Persistence is a
// best-effort record-keeping step: its outcome is captured for logging and
// the response flag, but it never decides whether the messaging hand-off
// happens. The customer must always reach the chat even if the database
// write fails.
type UseCase struct {
	drafts       DraftStore
	vehicleRepo  VehiclesRepository
	customerRepo CustomersRepository
	rentalRepo   RentalsRepository
	cache        LocationsCache
	link         LinkBuilder
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase creates the submission pipeline
func NewUseCase(
	drafts DraftStore,
	vehicleRepo VehiclesRepository,
	customerRepo CustomersRepository,
	rentalRepo RentalsRepository,
	cache LocationsCache,
	link LinkBuilder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		drafts:       drafts,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		rentalRepo:   rentalRepo,
		cache:        cache,
		link:         link,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute submits the session's draft.
//
// Phase 1 persists the draft as customer + rental rows; its error is logged
// and folded into Response.Persisted, nothing more. Phase 2 generates the
// summary message and the deep link; this is the only phase whose failure
// aborts the flow, and on abort the draft is kept so the customer can retry.
// On success the draft is cleared.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	draft := uc.drafts.Get(req.SessionID)
	if draft.IsEmpty() {
		uc.logger.Warn("SubmitReservation: session=%s has an empty draft", req.SessionID)
		return nil, ErrEmptyDraft
	}

	if err := validateDraft(draft); err != nil {
		uc.logger.Warn("SubmitReservation: session=%s draft incomplete: %v", req.SessionID, err)
		return nil, err
	}

	// Phase 1: best-effort persistence. The error is captured, never inspected
	// to decide whether phase 2 runs.
	persistErr := uc.persist(ctx, draft)
	if persistErr != nil {
		uc.logger.Error("SubmitReservation: session=%s persistence failed, continuing to hand-off: %v",
			req.SessionID, persistErr)
	}

	// Phase 2: message generation. A catalog miss is the one terminal error of
	// the pipeline.
	vehicle, err := uc.vehicleRepo.GetByID(ctx, *draft.VehicleID)
	if err != nil {
		if errors.Is(err, vehiclesRepo.ErrVehicleNotFound) {
			uc.logger.Error("SubmitReservation: session=%s vehicle id=%s missing from catalog, aborting",
				req.SessionID, *draft.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("SubmitReservation: session=%s vehicle lookup failed: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: vehicle lookup failed: %v", ErrInternal, err)
	}

	message := buildMessage(draft, vehicle, uc.cache.Get(ctx))
	deepLink := uc.link.Build(message)

	uc.drafts.Clear(req.SessionID)
	uc.logger.Info("SubmitReservation: session=%s handed off, persisted=%t", req.SessionID, persistErr == nil)

	return &Response{
		Link:      deepLink,
		Persisted: persistErr == nil,
	}, nil
}

// persist writes the draft as a customer and a pending rental inside one
// transaction. Customers are reused by CPF so repeated submissions do not
// pile up duplicate records.
func (uc *UseCase) persist(ctx context.Context, draft *domain.ReservationDraft) error {
	rental, customer, err := draftToRecords(draft)
	if err != nil {
		return fmt.Errorf("map draft to records: %w", err)
	}

	return uc.txManager.Do(ctx, func(txCtx context.Context) error {
		vehicle, err := uc.vehicleRepo.GetByID(txCtx, rental.VehicleID)
		if err != nil {
			return fmt.Errorf("lookup vehicle: %w", err)
		}
		rental.VehicleName = vehicle.Name
		rental.PricePerDay = vehicle.PricePerDay
		rental.TotalPrice = float64(rental.Days()) * vehicle.PricePerDay

		existing, err := uc.customerRepo.GetByCPF(txCtx, customer.CPF)
		switch {
		case err == nil:
			rental.CustomerID = existing.ID
		case isNotFound(err):
			created, err := uc.customerRepo.Create(txCtx, customer)
			if err != nil {
				return fmt.Errorf("create customer: %w", err)
			}
			rental.CustomerID = created.ID
		default:
			return fmt.Errorf("lookup customer: %w", err)
		}

		if _, err := uc.rentalRepo.Create(txCtx, rental); err != nil {
			return fmt.Errorf("create rental: %w", err)
		}
		return nil
	})
}
