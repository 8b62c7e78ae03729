package customers_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/infra/storage/customers"
)

var selectColumns = []string{
	"id", "name", "cpf", "cnh", "phone", "email", "birth_date",
	"cep", "street", "number", "complement", "neighborhood", "city", "state",
	"created_at", "updated_at",
}

func customerRow(mock sqlmock.Sqlmock) *sqlmock.Rows {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return mock.NewRows(selectColumns).AddRow(
		int64(1), "Maria Silva", "52998224725", "12345678901", "21999998888", "maria@example.com", nil,
		"20040020", "Rua da Assembleia", "10", nil, "Centro", "Rio de Janeiro", "RJ",
		now, now,
	)
}

func TestGetByCPF(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, cpf, cnh, phone, email, birth_date, cep, street, number, complement, neighborhood, city, state, created_at, updated_at FROM customers WHERE cpf = $1")).
		WithArgs("52998224725").
		WillReturnRows(customerRow(mock))

	repo := customers.NewRepository(db)

	c, err := repo.GetByCPF(context.Background(), "52998224725")
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, "Maria Silva", c.Name)
	assert.Equal(t, "20040020", c.CEP)
	assert.Nil(t, c.BirthDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByCPF_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM customers WHERE cpf = ").
		WithArgs("00000000191").
		WillReturnRows(mock.NewRows(selectColumns))

	repo := customers.NewRepository(db)

	_, err = repo.GetByCPF(context.Background(), "00000000191")
	assert.ErrorIs(t, err, customers.ErrCustomerNotFound)
}

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers (name,cpf,cnh,phone,email,birth_date,cep,street,number,complement,neighborhood,city,state) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13) RETURNING id, created_at, updated_at")).
		WillReturnRows(mock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), now, now))

	repo := customers.NewRepository(db)

	created, err := repo.Create(context.Background(), &domain.Customer{
		Name:  "Maria Silva",
		CPF:   "52998224725",
		Phone: "21999998888",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, now, created.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateCPF(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO customers").
		WillReturnError(&pq.Error{Code: "23505"})

	repo := customers.NewRepository(db)

	_, err = repo.Create(context.Background(), &domain.Customer{
		Name: "Maria Silva",
		CPF:  "52998224725",
	})
	assert.ErrorIs(t, err, customers.ErrCPFExists)
}

func TestUpdate_NoRowsMeansNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE customers SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := customers.NewRepository(db)

	err = repo.Update(context.Background(), &domain.Customer{ID: 99, Name: "Maria"})
	assert.ErrorIs(t, err, customers.ErrCustomerNotFound)
}

func TestDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM customers WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := customers.NewRepository(db)

	require.NoError(t, repo.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
