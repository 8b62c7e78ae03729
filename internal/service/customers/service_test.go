package customers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	customersRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/customers"
	"github.com/m04kA/SMC-RentalService/internal/service/customers"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// mockCustomersRepo is a hand-written test double. Each method is a function
// field so a test only sets the ones it needs.
type mockCustomersRepo struct {
	create   func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	getByID  func(ctx context.Context, id int64) (*domain.Customer, error)
	getByCPF func(ctx context.Context, cpf string) (*domain.Customer, error)
	list     func(ctx context.Context) ([]*domain.Customer, error)
	update   func(ctx context.Context, c *domain.Customer) error
	delete   func(ctx context.Context, id int64) error
}

var _ customers.CustomersRepository = (*mockCustomersRepo)(nil)

func (m *mockCustomersRepo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	return m.create(ctx, c)
}

func (m *mockCustomersRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return m.getByID(ctx, id)
}

func (m *mockCustomersRepo) GetByCPF(ctx context.Context, cpf string) (*domain.Customer, error) {
	return m.getByCPF(ctx, cpf)
}

func (m *mockCustomersRepo) List(ctx context.Context) ([]*domain.Customer, error) {
	return m.list(ctx)
}

func (m *mockCustomersRepo) Update(ctx context.Context, c *domain.Customer) error {
	return m.update(ctx, c)
}

func (m *mockCustomersRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

func TestCreate_NormalizesDocumentsBeforeStorage(t *testing.T) {
	var stored *domain.Customer
	repo := &mockCustomersRepo{
		create: func(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
			stored = c
			c.ID = 1
			return c, nil
		},
	}

	svc := customers.NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &domain.Customer{
		Name:  "Maria Silva",
		CPF:   "529.982.247-25",
		Phone: "(21) 99999-8888",
		CEP:   "20040-020",
	})
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.Equal(t, "52998224725", stored.CPF, "storage holds bare digits")
	assert.Equal(t, "21999998888", stored.Phone)
	assert.Equal(t, "20040020", stored.CEP)
}

func TestCreate_InvalidCPFRejected(t *testing.T) {
	repo := &mockCustomersRepo{
		create: func(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
			t.Fatal("invalid customer must not reach storage")
			return nil, nil
		},
	}

	svc := customers.NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &domain.Customer{
		Name: "Maria Silva",
		CPF:  "111.111.111-11",
	})
	assert.ErrorIs(t, err, customers.ErrInvalidInput)
}

func TestCreate_MissingNameRejected(t *testing.T) {
	svc := customers.NewService(&mockCustomersRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), &domain.Customer{CPF: "529.982.247-25"})
	assert.ErrorIs(t, err, customers.ErrInvalidInput)
}

func TestCreate_DuplicateCPF(t *testing.T) {
	repo := &mockCustomersRepo{
		create: func(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
			return nil, customersRepo.ErrCPFExists
		},
	}

	svc := customers.NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &domain.Customer{
		Name: "Maria Silva",
		CPF:  "52998224725",
	})
	assert.ErrorIs(t, err, customers.ErrCPFExists)
}

func TestUpdate_InvalidCEPRejected(t *testing.T) {
	svc := customers.NewService(&mockCustomersRepo{}, nopLogger{})

	err := svc.Update(context.Background(), &domain.Customer{
		ID:   1,
		Name: "Maria Silva",
		CPF:  "52998224725",
		CEP:  "1234",
	})
	assert.ErrorIs(t, err, customers.ErrInvalidInput)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockCustomersRepo{
		getByID: func(ctx context.Context, id int64) (*domain.Customer, error) {
			return nil, customersRepo.ErrCustomerNotFound
		},
	}

	svc := customers.NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, customers.ErrCustomerNotFound)
}
