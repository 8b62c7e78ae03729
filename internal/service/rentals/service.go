package rentals

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalsRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rentals"
)

// allowedTransitions describes the rental lifecycle:
// pending -> active -> completed, with cancellation possible while the
// rental is still pending or active.
var allowedTransitions = map[domain.RentalStatus][]domain.RentalStatus{
	domain.StatusPending: {domain.StatusActive, domain.StatusCancelled},
	domain.StatusActive:  {domain.StatusCompleted, domain.StatusCancelled},
}

// Service manages rental records for the back office
type Service struct {
	repo   RentalsRepository
	logger Logger
}

// NewService creates a rentals service
func NewService(repo RentalsRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID returns one rental
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	rental, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rentalsRepo.ErrRentalNotFound) {
			s.logger.Warn("GetByID: rental id=%d not found", id)
			return nil, ErrRentalNotFound
		}
		s.logger.Error("GetByID: repository error for rental id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return rental, nil
}

// List returns rentals matching the optional filters
func (s *Service) List(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error) {
	list, err := s.repo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// UpdateStatus moves a rental along its lifecycle
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus) error {
	rental, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !transitionAllowed(rental.Status, status) {
		s.logger.Warn("UpdateStatus: transition %s -> %s forbidden for rental id=%d", rental.Status, status, id)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, rental.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, rentalsRepo.ErrRentalNotFound) {
			return ErrRentalNotFound
		}
		s.logger.Error("UpdateStatus: repository error for rental id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: rental id=%d moved to %s", id, status)
	return nil
}

// Cancel cancels a rental recording the reason
func (s *Service) Cancel(ctx context.Context, id int64, reason string) error {
	rental, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !rental.CanBeCancelled() {
		s.logger.Warn("Cancel: rental id=%d in status %s cannot be cancelled", id, rental.Status)
		return ErrCannotCancel
	}

	if err := s.repo.Cancel(ctx, id, reason); err != nil {
		if errors.Is(err, rentalsRepo.ErrRentalNotFound) {
			return ErrRentalNotFound
		}
		s.logger.Error("Cancel: repository error for rental id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: rental id=%d cancelled", id)
	return nil
}

// Delete removes a rental record permanently
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, rentalsRepo.ErrRentalNotFound) {
			s.logger.Warn("Delete: rental id=%d not found", id)
			return ErrRentalNotFound
		}
		s.logger.Error("Delete: repository error for rental id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: rental id=%d deleted", id)
	return nil
}

func transitionAllowed(from, to domain.RentalStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
