package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/cache"
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeClock lets the tests move time forward past the TTL.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func storeLocations() []*domain.Location {
	return []*domain.Location{
		{ID: "copacabana-rj", Name: "Copacabana", City: "Rio de Janeiro", State: "RJ", Active: true},
		{ID: "barra-rj", Name: "Barra da Tijuca", City: "Rio de Janeiro", State: "RJ", Active: true},
	}
}

func TestGet_FreshEntryServedWithoutRefetch(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	calls := 0
	fetch := func(ctx context.Context) ([]*domain.Location, error) {
		calls++
		return storeLocations(), nil
	}

	c := cache.NewLocationsCacheWithClock(fetch, 30*time.Second, clock.Now, nopLogger{})

	first := c.Get(context.Background())
	require.Len(t, first, 2)
	assert.Equal(t, 1, calls)

	clock.Advance(10 * time.Second)
	second := c.Get(context.Background())
	require.Len(t, second, 2)
	assert.Equal(t, 1, calls, "fresh entry must not trigger a refetch")
}

func TestGet_ExpiredEntryRefetched(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	calls := 0
	fetch := func(ctx context.Context) ([]*domain.Location, error) {
		calls++
		return storeLocations(), nil
	}

	c := cache.NewLocationsCacheWithClock(fetch, 30*time.Second, clock.Now, nopLogger{})

	c.Get(context.Background())
	clock.Advance(31 * time.Second)
	c.Get(context.Background())

	assert.Equal(t, 2, calls, "expired entry must trigger a refetch")
}

func TestGet_FetchFailureKeepsPreviousList(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	fail := false
	fetch := func(ctx context.Context) ([]*domain.Location, error) {
		if fail {
			return nil, errors.New("connection refused")
		}
		return storeLocations(), nil
	}

	c := cache.NewLocationsCacheWithClock(fetch, 30*time.Second, clock.Now, nopLogger{})

	c.Get(context.Background())
	clock.Advance(31 * time.Second)
	fail = true

	got := c.Get(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, "copacabana-rj", got[0].ID, "stale list beats no list")
}

func TestGet_FetchFailureWithEmptyCacheServesFallback(t *testing.T) {
	fetch := func(ctx context.Context) ([]*domain.Location, error) {
		return nil, errors.New("connection refused")
	}

	c := cache.NewLocationsCache(fetch, 30*time.Second, nopLogger{})

	got := c.Get(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, "rio-centro-rj", got[0].ID)
	assert.Equal(t, "galeao-rj", got[1].ID)
}

func TestGetSync_NeverFetches(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context) ([]*domain.Location, error) {
		calls++
		return storeLocations(), nil
	}

	c := cache.NewLocationsCache(fetch, 30*time.Second, nopLogger{})

	got := c.GetSync()
	assert.Equal(t, 0, calls)
	require.Len(t, got, 2, "empty cache serves the fallback synchronously")
	assert.Equal(t, "rio-centro-rj", got[0].ID)

	c.Get(context.Background())
	got = c.GetSync()
	assert.Equal(t, 1, calls)
	assert.Equal(t, "copacabana-rj", got[0].ID)
}

func TestClear_ForcesRefetch(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context) ([]*domain.Location, error) {
		calls++
		return storeLocations(), nil
	}

	c := cache.NewLocationsCache(fetch, time.Hour, nopLogger{})

	c.Get(context.Background())
	c.Clear()
	c.Get(context.Background())

	assert.Equal(t, 2, calls)
}

func TestGet_ReturnsCopy(t *testing.T) {
	fetch := func(ctx context.Context) ([]*domain.Location, error) {
		return storeLocations(), nil
	}

	c := cache.NewLocationsCache(fetch, time.Hour, nopLogger{})

	first := c.Get(context.Background())
	first[0] = &domain.Location{ID: "mutated"}

	second := c.Get(context.Background())
	assert.Equal(t, "copacabana-rj", second[0].ID, "callers must not share the backing slice")
}
