package rentals_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalsRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rentals"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// mockRentalsRepo is a hand-written test double. Each method is a function
// field so a test only sets the ones it needs.
type mockRentalsRepo struct {
	getByID       func(ctx context.Context, id int64) (*domain.Rental, error)
	getWithFilter func(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error)
	updateStatus  func(ctx context.Context, id int64, status domain.RentalStatus) error
	cancel        func(ctx context.Context, id int64, reason string) error
	delete        func(ctx context.Context, id int64) error
}

var _ rentals.RentalsRepository = (*mockRentalsRepo)(nil)

func (m *mockRentalsRepo) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	return m.getByID(ctx, id)
}

func (m *mockRentalsRepo) GetWithFilter(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error) {
	return m.getWithFilter(ctx, filter)
}

func (m *mockRentalsRepo) UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus) error {
	return m.updateStatus(ctx, id, status)
}

func (m *mockRentalsRepo) Cancel(ctx context.Context, id int64, reason string) error {
	return m.cancel(ctx, id, reason)
}

func (m *mockRentalsRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

func rentalInStatus(status domain.RentalStatus) *domain.Rental {
	return &domain.Rental{
		ID:         10,
		CustomerID: 1,
		VehicleID:  "onix-turbo-at",
		Status:     status,
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.RentalStatus
		to      domain.RentalStatus
		wantErr error
	}{
		{"pending to active", domain.StatusPending, domain.StatusActive, nil},
		{"pending to cancelled", domain.StatusPending, domain.StatusCancelled, nil},
		{"active to completed", domain.StatusActive, domain.StatusCompleted, nil},
		{"active to cancelled", domain.StatusActive, domain.StatusCancelled, nil},
		{"pending to completed skips active", domain.StatusPending, domain.StatusCompleted, rentals.ErrInvalidTransition},
		{"completed is terminal", domain.StatusCompleted, domain.StatusActive, rentals.ErrInvalidTransition},
		{"cancelled is terminal", domain.StatusCancelled, domain.StatusPending, rentals.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := false
			repo := &mockRentalsRepo{
				getByID: func(ctx context.Context, id int64) (*domain.Rental, error) {
					return rentalInStatus(tt.from), nil
				},
				updateStatus: func(ctx context.Context, id int64, status domain.RentalStatus) error {
					updated = true
					assert.Equal(t, tt.to, status)
					return nil
				},
			}

			svc := rentals.NewService(repo, nopLogger{})

			err := svc.UpdateStatus(context.Background(), 10, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, updated, "forbidden transition must not reach storage")
				return
			}
			require.NoError(t, err)
			assert.True(t, updated)
		})
	}
}

func TestUpdateStatus_RentalNotFound(t *testing.T) {
	repo := &mockRentalsRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Rental, error) {
			return nil, rentalsRepo.ErrRentalNotFound
		},
	}

	svc := rentals.NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 99, domain.StatusActive)
	assert.ErrorIs(t, err, rentals.ErrRentalNotFound)
}

func TestCancel_RecordsReason(t *testing.T) {
	var gotReason string
	repo := &mockRentalsRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Rental, error) {
			return rentalInStatus(domain.StatusActive), nil
		},
		cancel: func(ctx context.Context, id int64, reason string) error {
			gotReason = reason
			return nil
		},
	}

	svc := rentals.NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, "cliente desistiu")
	require.NoError(t, err)
	assert.Equal(t, "cliente desistiu", gotReason)
}

func TestCancel_CompletedRentalRejected(t *testing.T) {
	repo := &mockRentalsRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Rental, error) {
			return rentalInStatus(domain.StatusCompleted), nil
		},
		cancel: func(ctx context.Context, id int64, reason string) error {
			t.Fatal("completed rental must not be cancelled")
			return nil
		},
	}

	svc := rentals.NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, "tarde demais")
	assert.ErrorIs(t, err, rentals.ErrCannotCancel)
}

func TestList_PassesFilterThrough(t *testing.T) {
	vehicleID := "onix-turbo-at"
	repo := &mockRentalsRepo{
		getWithFilter: func(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error) {
			require.NotNil(t, filter.VehicleID)
			assert.Equal(t, vehicleID, *filter.VehicleID)
			return []*domain.Rental{rentalInStatus(domain.StatusActive)}, nil
		},
	}

	svc := rentals.NewService(repo, nopLogger{})

	list, err := svc.List(context.Background(), domain.RentalsFilter{VehicleID: &vehicleID})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
