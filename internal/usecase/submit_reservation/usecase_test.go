package submit_reservation_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	customersRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/customers"
	vehiclesRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicles"
	submitReservation "github.com/m04kA/SMC-RentalService/internal/usecase/submit_reservation"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockDraftStore struct {
	drafts  map[string]*domain.ReservationDraft
	cleared []string
}

func (m *mockDraftStore) Get(sessionID string) *domain.ReservationDraft {
	if d, ok := m.drafts[sessionID]; ok {
		copied := *d
		return &copied
	}
	return &domain.ReservationDraft{}
}

func (m *mockDraftStore) Clear(sessionID string) {
	m.cleared = append(m.cleared, sessionID)
	delete(m.drafts, sessionID)
}

type mockVehiclesRepo struct {
	getByID func(ctx context.Context, id string) (*domain.Vehicle, error)
}

func (m *mockVehiclesRepo) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	return m.getByID(ctx, id)
}

type mockCustomersRepo struct {
	getByCPF func(ctx context.Context, cpf string) (*domain.Customer, error)
	create   func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

func (m *mockCustomersRepo) GetByCPF(ctx context.Context, cpf string) (*domain.Customer, error) {
	return m.getByCPF(ctx, cpf)
}

func (m *mockCustomersRepo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	return m.create(ctx, c)
}

type mockRentalsRepo struct {
	created []*domain.Rental
	fail    error
}

func (m *mockRentalsRepo) Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	m.created = append(m.created, rental)
	return rental, nil
}

type mockCache struct {
	locations []*domain.Location
}

func (m *mockCache) Get(ctx context.Context) []*domain.Location {
	return m.locations
}

type mockLinkBuilder struct{}

func (mockLinkBuilder) Build(text string) string {
	return "whatsapp://5521999990000?text=" + url.QueryEscape(text)
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func completeDraft() *domain.ReservationDraft {
	return &domain.ReservationDraft{
		VehicleID:        ptr.Ptr("onix-turbo-at"),
		PickupLocationID: ptr.Ptr("rio-centro-rj"),
		ReturnLocationID: ptr.Ptr("galeao-rj"),
		PickupDate:       ptr.Ptr("2026-09-15"),
		ReturnDate:       ptr.Ptr("2026-09-18"),
		PickupTime:       ptr.Ptr("10:00"),
		ReturnTime:       ptr.Ptr("18:00"),
		Name:             ptr.Ptr("Maria Silva"),
		CPF:              ptr.Ptr("529.982.247-25"),
		Phone:            ptr.Ptr("(21) 99999-8888"),
	}
}

func testVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ID:          "onix-turbo-at",
		Name:        "Chevrolet Onix Turbo AT",
		PricePerDay: 120,
		Active:      true,
	}
}

func testLocations() []*domain.Location {
	return []*domain.Location{
		{ID: "rio-centro-rj", Name: "Rio de Janeiro - Centro"},
		{ID: "galeao-rj", Name: "Aeroporto Internacional do Galeão"},
	}
}

func newUseCase(
	drafts *mockDraftStore,
	vehicles *mockVehiclesRepo,
	customers *mockCustomersRepo,
	rentals *mockRentalsRepo,
) *submitReservation.UseCase {
	return submitReservation.NewUseCase(
		drafts,
		vehicles,
		customers,
		rentals,
		&mockCache{locations: testLocations()},
		mockLinkBuilder{},
		passthroughTx{},
		nopLogger{},
	)
}

func freshCustomerRepo() *mockCustomersRepo {
	return &mockCustomersRepo{
		getByCPF: func(ctx context.Context, cpf string) (*domain.Customer, error) {
			return nil, customersRepo.ErrCustomerNotFound
		},
		create: func(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
			c.ID = 7
			return c, nil
		},
	}
}

func TestExecute_PersistenceSuccess(t *testing.T) {
	drafts := &mockDraftStore{drafts: map[string]*domain.ReservationDraft{"sess-1": completeDraft()}}
	vehicles := &mockVehiclesRepo{getByID: func(ctx context.Context, id string) (*domain.Vehicle, error) {
		return testVehicle(), nil
	}}
	rentals := &mockRentalsRepo{}

	uc := newUseCase(drafts, vehicles, freshCustomerRepo(), rentals)

	res, err := uc.Execute(context.Background(), &submitReservation.Request{SessionID: "sess-1"})
	require.NoError(t, err)

	assert.True(t, res.Persisted)
	assert.Contains(t, res.Link, "whatsapp://")
	assert.Equal(t, []string{"sess-1"}, drafts.cleared)

	require.Len(t, rentals.created, 1)
	created := rentals.created[0]
	assert.Equal(t, int64(7), created.CustomerID)
	assert.Equal(t, "Chevrolet Onix Turbo AT", created.VehicleName)
	assert.Equal(t, float64(3*120), created.TotalPrice)
	assert.Equal(t, domain.StatusPending, created.Status)
}

// The two persistence outcomes must be indistinguishable from the customer's
// side: hand-off link produced and draft cleared either way.
func TestExecute_PersistenceFailureStillHandsOff(t *testing.T) {
	drafts := &mockDraftStore{drafts: map[string]*domain.ReservationDraft{"sess-1": completeDraft()}}
	vehicles := &mockVehiclesRepo{getByID: func(ctx context.Context, id string) (*domain.Vehicle, error) {
		return testVehicle(), nil
	}}
	rentals := &mockRentalsRepo{fail: errors.New("connection refused")}

	uc := newUseCase(drafts, vehicles, freshCustomerRepo(), rentals)

	res, err := uc.Execute(context.Background(), &submitReservation.Request{SessionID: "sess-1"})
	require.NoError(t, err)

	assert.False(t, res.Persisted)
	assert.Contains(t, res.Link, "whatsapp://")
	assert.Equal(t, []string{"sess-1"}, drafts.cleared)
}

func TestExecute_MessageContainsResolvedNames(t *testing.T) {
	drafts := &mockDraftStore{drafts: map[string]*domain.ReservationDraft{"sess-1": completeDraft()}}
	vehicles := &mockVehiclesRepo{getByID: func(ctx context.Context, id string) (*domain.Vehicle, error) {
		return testVehicle(), nil
	}}

	uc := newUseCase(drafts, vehicles, freshCustomerRepo(), &mockRentalsRepo{})

	res, err := uc.Execute(context.Background(), &submitReservation.Request{SessionID: "sess-1"})
	require.NoError(t, err)

	encoded := strings.TrimPrefix(res.Link, "whatsapp://5521999990000?text=")
	message, err := url.QueryUnescape(encoded)
	require.NoError(t, err)

	assert.Contains(t, message, "Chevrolet Onix Turbo AT")
	assert.Contains(t, message, "Rio de Janeiro - Centro")
	assert.Contains(t, message, "Aeroporto Internacional do Galeão")
	assert.Contains(t, message, "Maria Silva")
	assert.Contains(t, message, "529.982.247-25")
	assert.Contains(t, message, "(21) 99999-8888")
	assert.Contains(t, message, "2026-09-15 às 10:00")
}

// Catalog miss is the only terminal failure; the draft stays for retry.
func TestExecute_VehicleGoneAbortsAndKeepsDraft(t *testing.T) {
	drafts := &mockDraftStore{drafts: map[string]*domain.ReservationDraft{"sess-1": completeDraft()}}
	vehicles := &mockVehiclesRepo{getByID: func(ctx context.Context, id string) (*domain.Vehicle, error) {
		return nil, vehiclesRepo.ErrVehicleNotFound
	}}

	uc := newUseCase(drafts, vehicles, freshCustomerRepo(), &mockRentalsRepo{})

	_, err := uc.Execute(context.Background(), &submitReservation.Request{SessionID: "sess-1"})
	assert.ErrorIs(t, err, submitReservation.ErrVehicleNotFound)

	assert.Empty(t, drafts.cleared)
	assert.False(t, drafts.Get("sess-1").IsEmpty())
}

func TestExecute_EmptyDraftRejected(t *testing.T) {
	drafts := &mockDraftStore{drafts: map[string]*domain.ReservationDraft{}}
	uc := newUseCase(drafts, &mockVehiclesRepo{}, freshCustomerRepo(), &mockRentalsRepo{})

	_, err := uc.Execute(context.Background(), &submitReservation.Request{SessionID: "sess-1"})
	assert.ErrorIs(t, err, submitReservation.ErrEmptyDraft)
}

func TestExecute_MissingRequiredFieldsRejected(t *testing.T) {
	draft := completeDraft()
	draft.Phone = nil
	drafts := &mockDraftStore{drafts: map[string]*domain.ReservationDraft{"sess-1": draft}}

	uc := newUseCase(drafts, &mockVehiclesRepo{}, freshCustomerRepo(), &mockRentalsRepo{})

	_, err := uc.Execute(context.Background(), &submitReservation.Request{SessionID: "sess-1"})
	assert.ErrorIs(t, err, submitReservation.ErrMissingFields)
	assert.Empty(t, drafts.cleared)
}

func TestExecute_ExistingCustomerReusedByCPF(t *testing.T) {
	drafts := &mockDraftStore{drafts: map[string]*domain.ReservationDraft{"sess-1": completeDraft()}}
	vehicles := &mockVehiclesRepo{getByID: func(ctx context.Context, id string) (*domain.Vehicle, error) {
		return testVehicle(), nil
	}}
	customers := &mockCustomersRepo{
		getByCPF: func(ctx context.Context, cpf string) (*domain.Customer, error) {
			assert.Equal(t, "52998224725", cpf, "lookup must use bare digits")
			return &domain.Customer{ID: 42, CPF: cpf}, nil
		},
		create: func(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
			t.Fatal("existing customer must not be recreated")
			return nil, nil
		},
	}
	rentals := &mockRentalsRepo{}

	uc := newUseCase(drafts, vehicles, customers, rentals)

	res, err := uc.Execute(context.Background(), &submitReservation.Request{SessionID: "sess-1"})
	require.NoError(t, err)
	assert.True(t, res.Persisted)

	require.Len(t, rentals.created, 1)
	assert.Equal(t, int64(42), rentals.created[0].CustomerID)
}
