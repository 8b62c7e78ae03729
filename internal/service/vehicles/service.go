package vehicles

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	vehiclesRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicles"
)

// Service manages the vehicle catalog
type Service struct {
	repo   VehiclesRepository
	logger Logger
}

// NewService creates a vehicles service
func NewService(repo VehiclesRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListActive returns the storefront catalog
func (s *Service) ListActive(ctx context.Context) ([]*domain.Vehicle, error) {
	list, err := s.repo.GetActive(ctx)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// ListAll returns the full catalog including inactive entries (back office)
func (s *Service) ListAll(ctx context.Context) ([]*domain.Vehicle, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// GetByID returns one catalog entry
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehiclesRepo.ErrVehicleNotFound) {
			s.logger.Warn("GetByID: vehicle id=%s not found", id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GetByID: repository error for vehicle id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return v, nil
}

// Create adds a catalog entry
func (s *Service) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	if err := validateVehicle(v); err != nil {
		s.logger.Warn("Create: validation failed for vehicle id=%s: %v", v.ID, err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, v)
	if err != nil {
		if errors.Is(err, vehiclesRepo.ErrVehicleExists) {
			s.logger.Warn("Create: vehicle id=%s already exists", v.ID)
			return nil, ErrVehicleExists
		}
		s.logger.Error("Create: repository error for vehicle id=%s: %v", v.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: vehicle id=%s created", created.ID)
	return created, nil
}

// Update rewrites a catalog entry
func (s *Service) Update(ctx context.Context, v *domain.Vehicle) error {
	if err := validateVehicle(v); err != nil {
		s.logger.Warn("Update: validation failed for vehicle id=%s: %v", v.ID, err)
		return err
	}

	if err := s.repo.Update(ctx, v); err != nil {
		if errors.Is(err, vehiclesRepo.ErrVehicleNotFound) {
			s.logger.Warn("Update: vehicle id=%s not found", v.ID)
			return ErrVehicleNotFound
		}
		s.logger.Error("Update: repository error for vehicle id=%s: %v", v.ID, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: vehicle id=%s updated", v.ID)
	return nil
}

// Delete removes a catalog entry
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, vehiclesRepo.ErrVehicleNotFound) {
			s.logger.Warn("Delete: vehicle id=%s not found", id)
			return ErrVehicleNotFound
		}
		s.logger.Error("Delete: repository error for vehicle id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: vehicle id=%s deleted", id)
	return nil
}

func validateVehicle(v *domain.Vehicle) error {
	if v.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if v.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if v.PricePerDay < 0 {
		return fmt.Errorf("%w: pricePerDay must not be negative", ErrInvalidInput)
	}
	if v.Seats < 0 {
		return fmt.Errorf("%w: seats must not be negative", ErrInvalidInput)
	}
	return nil
}
