// Package draftstore keeps the in-progress reservation drafts, one per
// storefront session. Drafts live in process memory: a draft belongs to a
// single page session by construction, and losing it on restart only means
// the customer re-fills the form.
package draftstore

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// DefaultMaxAge is how long an untouched draft survives before the sweep
// drops it.
const DefaultMaxAge = 24 * time.Hour

// Store is a concurrency-safe reservation draft store keyed by session id.
type Store struct {
	mu     sync.RWMutex
	drafts map[string]*domain.ReservationDraft
	maxAge time.Duration
	now    func() time.Time
}

// New creates a draft store with the default max age.
func New() *Store {
	return NewWithOptions(DefaultMaxAge, time.Now)
}

// NewWithOptions creates a draft store with an explicit max age and clock.
func NewWithOptions(maxAge time.Duration, now func() time.Time) *Store {
	return &Store{
		drafts: make(map[string]*domain.ReservationDraft),
		maxAge: maxAge,
		now:    now,
	}
}

// Get returns a copy of the session's draft. A session without a draft gets
// an empty one: the flow always starts from an empty draft, never an error.
func (s *Store) Get(sessionID string) *domain.ReservationDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if d, ok := s.drafts[sessionID]; ok {
		copied := *d
		return &copied
	}
	return &domain.ReservationDraft{}
}

// Update merges the non-nil fields of patch into the session's draft and
// returns a copy of the result.
func (s *Store) Update(sessionID string, patch *domain.ReservationDraft) *domain.ReservationDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	d, ok := s.drafts[sessionID]
	if !ok {
		d = &domain.ReservationDraft{}
		s.drafts[sessionID] = d
	}

	d.Merge(patch)
	d.UpdatedAt = s.now()

	copied := *d
	return &copied
}

// Clear removes the session's draft. Clearing an absent draft is a no-op.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
}

// sweepLocked drops drafts whose last update is older than maxAge.
// Caller holds the write lock.
func (s *Store) sweepLocked() {
	cutoff := s.now().Add(-s.maxAge)
	for id, d := range s.drafts {
		if d.UpdatedAt.Before(cutoff) {
			delete(s.drafts, id)
		}
	}
}
