package locations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	locationsRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/locations"
)

// Service provides rental locations to the storefront and the back office.
// Storefront reads go through the cache; admin writes bypass it and
// invalidate it so the next read refetches.
type Service struct {
	repo   LocationsRepository
	cache  LocationsCache
	logger Logger
}

// NewService creates a locations service
func NewService(repo LocationsRepository, cache LocationsCache, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List returns the active locations ordered for display. Without a state
// filter the cached list is served; filtered reads hit the store directly
// and degrade to an empty list on failure, never to an error.
func (s *Service) List(ctx context.Context, state *string) []*domain.Location {
	if state == nil {
		return s.cache.Get(ctx)
	}

	locs, err := s.repo.GetByState(ctx, *state)
	if err != nil {
		s.logger.Warn("List: fetch by state=%s failed, serving empty list: %v", *state, err)
		return []*domain.Location{}
	}
	return locs
}

// ListAll returns every location including inactive ones (back office)
func (s *Service) ListAll(ctx context.Context) ([]*domain.Location, error) {
	locs, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}
	return locs, nil
}

// Create adds a location and invalidates the cache
func (s *Service) Create(ctx context.Context, loc *domain.Location) (*domain.Location, error) {
	if loc.ID == "" || loc.Name == "" {
		return nil, fmt.Errorf("%w: id and name are required", ErrInvalidInput)
	}

	created, err := s.repo.Create(ctx, loc)
	if err != nil {
		if errors.Is(err, locationsRepo.ErrLocationExists) {
			s.logger.Warn("Create: location id=%s already exists", loc.ID)
			return nil, ErrLocationExists
		}
		s.logger.Error("Create: repository error for location id=%s: %v", loc.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.cache.Clear()
	s.logger.Info("Create: location id=%s created", created.ID)
	return created, nil
}

// Update rewrites a location and invalidates the cache
func (s *Service) Update(ctx context.Context, loc *domain.Location) error {
	if loc.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, loc); err != nil {
		if errors.Is(err, locationsRepo.ErrLocationNotFound) {
			s.logger.Warn("Update: location id=%s not found", loc.ID)
			return ErrLocationNotFound
		}
		s.logger.Error("Update: repository error for location id=%s: %v", loc.ID, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.cache.Clear()
	s.logger.Info("Update: location id=%s updated", loc.ID)
	return nil
}

// Delete removes a location and invalidates the cache
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, locationsRepo.ErrLocationNotFound) {
			s.logger.Warn("Delete: location id=%s not found", id)
			return ErrLocationNotFound
		}
		s.logger.Error("Delete: repository error for location id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.cache.Clear()
	s.logger.Info("Delete: location id=%s deleted", id)
	return nil
}
