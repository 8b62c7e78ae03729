// Package cache implements the in-process locations cache that feeds the
// reservation form. Availability wins over freshness: a failed refetch
// degrades to a static fallback list, never to an error.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// DefaultTTL is the staleness window for cached locations.
const DefaultTTL = 30 * time.Second

// FetchFunc loads the ordered active locations from the backing store.
type FetchFunc func(ctx context.Context) ([]*domain.Location, error)

// Logger is the logging surface the cache needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// fallbackLocations is returned whenever the cache is empty and the backing
// store cannot be reached. The reservation form must always render usable
// options.
var fallbackLocations = []*domain.Location{
	{
		ID:           "rio-centro-rj",
		Name:         "Rio de Janeiro - Centro",
		Address:      "Av. Rio Branco, 156",
		City:         "Rio de Janeiro",
		State:        "RJ",
		Active:       true,
		DisplayOrder: 1,
	},
	{
		ID:           "galeao-rj",
		Name:         "Aeroporto Internacional do Galeão",
		Address:      "Av. Vinte de Janeiro, s/n",
		City:         "Rio de Janeiro",
		State:        "RJ",
		Active:       true,
		DisplayOrder: 2,
	},
}

// FallbackLocations returns a copy of the static fallback list.
func FallbackLocations() []*domain.Location {
	return copyLocations(fallbackLocations)
}

// LocationsCache holds the last fetched location list with its fetch
// timestamp. The entry is replaced wholesale, never merged.
//
// The mutex only guards the fields; the fetch itself runs outside the lock.
// Concurrent callers racing past an expired entry each issue their own fetch
// and the last write wins. Refetches are idempotent reads of reference data,
// so duplicate fetches are harmless.
type LocationsCache struct {
	mu        sync.RWMutex
	locations []*domain.Location
	fetchedAt time.Time

	fetch FetchFunc
	now   func() time.Time
	ttl   time.Duration
	log   Logger
}

// NewLocationsCache builds a cache around the given fetch function.
func NewLocationsCache(fetch FetchFunc, ttl time.Duration, log Logger) *LocationsCache {
	return NewLocationsCacheWithClock(fetch, ttl, time.Now, log)
}

// NewLocationsCacheWithClock is NewLocationsCache with an injected clock.
func NewLocationsCacheWithClock(fetch FetchFunc, ttl time.Duration, now func() time.Time, log Logger) *LocationsCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &LocationsCache{
		fetch: fetch,
		now:   now,
		ttl:   ttl,
		log:   log,
	}
}

// Get returns the cached list while it is fresh, refetching otherwise.
// On fetch failure the previous list is kept if present, else the static
// fallback is returned. This path never returns an error.
func (c *LocationsCache) Get(ctx context.Context) []*domain.Location {
	c.mu.RLock()
	cached := c.locations
	age := c.now().Sub(c.fetchedAt)
	c.mu.RUnlock()

	if cached != nil && age < c.ttl {
		return copyLocations(cached)
	}

	fresh, err := c.fetch(ctx)
	if err != nil {
		c.log.Warn("locations cache: refetch failed, serving degraded list: %v", err)
		if cached != nil {
			return copyLocations(cached)
		}
		return FallbackLocations()
	}

	c.mu.Lock()
	c.locations = fresh
	c.fetchedAt = c.now()
	c.mu.Unlock()

	return copyLocations(fresh)
}

// GetSync returns the current cache contents without ever fetching.
// Before the first successful fetch it returns the static fallback; meant
// for first paint while Get resolves.
func (c *LocationsCache) GetSync() []*domain.Location {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.locations == nil {
		return FallbackLocations()
	}
	return copyLocations(c.locations)
}

// Preload opportunistically refreshes the cache in the background.
// Errors are only ever observable via logs; the caller is never blocked.
func (c *LocationsCache) Preload(ctx context.Context) {
	go func() {
		c.Get(ctx)
	}()
}

// Clear resets the cache, forcing the next Get to refetch regardless of age.
func (c *LocationsCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locations = nil
	c.fetchedAt = time.Time{}
}

func copyLocations(src []*domain.Location) []*domain.Location {
	out := make([]*domain.Location, len(src))
	copy(out, src)
	return out
}
