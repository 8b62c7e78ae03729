package create_rental

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	customersRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/customers"
	vehiclesRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicles"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct {
	t time.Time
}

func (p fixedTime) Now() time.Time {
	return p.t
}

type mockRentalsRepo struct {
	create        func(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	getWithFilter func(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error)
}

func (m *mockRentalsRepo) Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	return m.create(ctx, rental)
}

func (m *mockRentalsRepo) GetWithFilter(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error) {
	return m.getWithFilter(ctx, filter)
}

type mockVehiclesRepo struct {
	getByID func(ctx context.Context, id string) (*domain.Vehicle, error)
}

func (m *mockVehiclesRepo) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	return m.getByID(ctx, id)
}

type mockCustomersRepo struct {
	getByID func(ctx context.Context, id int64) (*domain.Customer, error)
}

func (m *mockCustomersRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return m.getByID(ctx, id)
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var now = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		CustomerID:       42,
		VehicleID:        "onix-turbo-at",
		PickupLocationID: "rio-centro-rj",
		ReturnLocationID: "rio-centro-rj",
		PickupDate:       time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		ReturnDate:       time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
	}
}

func knownCustomer() *mockCustomersRepo {
	return &mockCustomersRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Customer, error) {
			return &domain.Customer{ID: id, Name: "Maria Silva"}, nil
		},
	}
}

func activeVehicle() *mockVehiclesRepo {
	return &mockVehiclesRepo{
		getByID: func(ctx context.Context, id string) (*domain.Vehicle, error) {
			return &domain.Vehicle{ID: id, Name: "Chevrolet Onix Turbo AT", PricePerDay: 120, Active: true}, nil
		},
	}
}

func newTestUseCase(rentals *mockRentalsRepo, vehicles *mockVehiclesRepo, customers *mockCustomersRepo) *UseCase {
	uc := NewUseCase(rentals, vehicles, customers, passthroughTx{}, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func TestExecute_Success(t *testing.T) {
	rentals := &mockRentalsRepo{
		getWithFilter: func(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error) {
			return nil, nil
		},
		create: func(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
			rental.ID = 7
			return rental, nil
		},
	}

	uc := newTestUseCase(rentals, activeVehicle(), knownCustomer())

	res, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, "Chevrolet Onix Turbo AT", res.VehicleName)
	assert.Equal(t, 3, res.Days)
	assert.Equal(t, float64(3*120), res.TotalPrice, "total is days times the frozen daily price")
	assert.Equal(t, string(domain.StatusPending), res.Status)
}

func TestExecute_OverlappingRentalBlocks(t *testing.T) {
	rentals := &mockRentalsRepo{
		getWithFilter: func(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error) {
			return []*domain.Rental{{
				ID:         3,
				VehicleID:  "onix-turbo-at",
				Status:     domain.StatusActive,
				PickupDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
				ReturnDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			}}, nil
		},
		create: func(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
			t.Fatal("occupied vehicle must not be rented")
			return nil, nil
		},
	}

	uc := newTestUseCase(rentals, activeVehicle(), knownCustomer())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVehicleUnavailable)
}

func TestExecute_CancelledRentalDoesNotBlock(t *testing.T) {
	rentals := &mockRentalsRepo{
		getWithFilter: func(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error) {
			return []*domain.Rental{{
				ID:         3,
				VehicleID:  "onix-turbo-at",
				Status:     domain.StatusCancelled,
				PickupDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
				ReturnDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			}}, nil
		},
		create: func(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
			rental.ID = 8
			return rental, nil
		},
	}

	uc := newTestUseCase(rentals, activeVehicle(), knownCustomer())

	res, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(8), res.ID)
}

func TestExecute_InactiveVehicleRejected(t *testing.T) {
	vehicles := &mockVehiclesRepo{
		getByID: func(ctx context.Context, id string) (*domain.Vehicle, error) {
			return &domain.Vehicle{ID: id, Name: "Fiat Uno", PricePerDay: 80, Active: false}, nil
		},
	}

	uc := newTestUseCase(&mockRentalsRepo{}, vehicles, knownCustomer())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVehicleInactive)
}

func TestExecute_UnknownVehicle(t *testing.T) {
	vehicles := &mockVehiclesRepo{
		getByID: func(ctx context.Context, id string) (*domain.Vehicle, error) {
			return nil, vehiclesRepo.ErrVehicleNotFound
		},
	}

	uc := newTestUseCase(&mockRentalsRepo{}, vehicles, knownCustomer())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestExecute_UnknownCustomer(t *testing.T) {
	customers := &mockCustomersRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Customer, error) {
			return nil, customersRepo.ErrCustomerNotFound
		},
	}

	uc := newTestUseCase(&mockRentalsRepo{}, activeVehicle(), customers)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_PastPickupDateRejected(t *testing.T) {
	req := validRequest()
	req.PickupDate = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	req.ReturnDate = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&mockRentalsRepo{}, activeVehicle(), knownCustomer())

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestExecute_ReturnBeforePickupRejected(t *testing.T) {
	req := validRequest()
	req.ReturnDate = req.PickupDate.AddDate(0, 0, -1)

	uc := newTestUseCase(&mockRentalsRepo{}, activeVehicle(), knownCustomer())

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestExecute_SameDayPickupAllowed(t *testing.T) {
	req := validRequest()
	req.PickupDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	req.ReturnDate = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	rentals := &mockRentalsRepo{
		getWithFilter: func(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error) {
			return nil, nil
		},
		create: func(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
			rental.ID = 9
			return rental, nil
		},
	}

	uc := newTestUseCase(rentals, activeVehicle(), knownCustomer())

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err, "pickup on the current calendar day is not in the past")
}
