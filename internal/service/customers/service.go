package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	customersRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/customers"
	"github.com/m04kA/SMC-RentalService/pkg/brdoc"
)

// Service manages customer records. Documents are normalized to digits
// before they reach storage, so lookups by CPF never depend on how the
// caller formatted the input.
type Service struct {
	repo   CustomersRepository
	logger Logger
}

// NewService creates a customers service
func NewService(repo CustomersRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create registers a new customer
func (s *Service) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	normalizeCustomer(c)
	if err := validateCustomer(c); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, customersRepo.ErrCPFExists) {
			s.logger.Warn("Create: CPF already registered")
			return nil, ErrCPFExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: customer id=%d created", created.ID)
	return created, nil
}

// GetByID returns one customer
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customersRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return c, nil
}

// List returns all customers
func (s *Service) List(ctx context.Context) ([]*domain.Customer, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// Update rewrites a customer record
func (s *Service) Update(ctx context.Context, c *domain.Customer) error {
	normalizeCustomer(c)
	if err := validateCustomer(c); err != nil {
		s.logger.Warn("Update: validation failed for customer id=%d: %v", c.ID, err)
		return err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, customersRepo.ErrCustomerNotFound) {
			s.logger.Warn("Update: customer id=%d not found", c.ID)
			return ErrCustomerNotFound
		}
		if errors.Is(err, customersRepo.ErrCPFExists) {
			s.logger.Warn("Update: CPF already registered to another customer")
			return ErrCPFExists
		}
		s.logger.Error("Update: repository error for customer id=%d: %v", c.ID, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: customer id=%d updated", c.ID)
	return nil
}

// Delete removes a customer record
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, customersRepo.ErrCustomerNotFound) {
			s.logger.Warn("Delete: customer id=%d not found", id)
			return ErrCustomerNotFound
		}
		s.logger.Error("Delete: repository error for customer id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: customer id=%d deleted", id)
	return nil
}

func normalizeCustomer(c *domain.Customer) {
	c.CPF = brdoc.Digits(c.CPF)
	c.CNH = brdoc.Digits(c.CNH)
	c.Phone = brdoc.Digits(c.Phone)
	c.CEP = brdoc.Digits(c.CEP)
}

func validateCustomer(c *domain.Customer) error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !brdoc.IsValidCPF(c.CPF) {
		return fmt.Errorf("%w: invalid CPF", ErrInvalidInput)
	}
	if c.CEP != "" && !brdoc.IsValidCEP(c.CEP) {
		return fmt.Errorf("%w: invalid CEP", ErrInvalidInput)
	}
	return nil
}
