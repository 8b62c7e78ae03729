package draftstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/infra/draftstore"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

func TestGet_UnknownSessionReturnsEmptyDraft(t *testing.T) {
	s := draftstore.New()

	draft := s.Get("unknown")
	require.NotNil(t, draft)
	assert.True(t, draft.IsEmpty())
}

func TestUpdate_MergesPartialPatches(t *testing.T) {
	s := draftstore.New()

	s.Update("sess-1", &domain.ReservationDraft{
		VehicleID: ptr.Ptr("onix-turbo-at"),
		Name:      ptr.Ptr("Maria Silva"),
	})
	draft := s.Update("sess-1", &domain.ReservationDraft{
		PickupDate: ptr.Ptr("2026-09-15"),
	})

	require.NotNil(t, draft.VehicleID)
	assert.Equal(t, "onix-turbo-at", *draft.VehicleID)
	require.NotNil(t, draft.Name)
	assert.Equal(t, "Maria Silva", *draft.Name)
	require.NotNil(t, draft.PickupDate)
	assert.Equal(t, "2026-09-15", *draft.PickupDate)
}

func TestUpdate_SessionsAreIsolated(t *testing.T) {
	s := draftstore.New()

	s.Update("sess-1", &domain.ReservationDraft{Name: ptr.Ptr("Maria")})
	s.Update("sess-2", &domain.ReservationDraft{Name: ptr.Ptr("João")})

	assert.Equal(t, "Maria", *s.Get("sess-1").Name)
	assert.Equal(t, "João", *s.Get("sess-2").Name)
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := draftstore.New()
	s.Update("sess-1", &domain.ReservationDraft{Name: ptr.Ptr("Maria")})

	draft := s.Get("sess-1")
	draft.Name = ptr.Ptr("mutated")

	assert.Equal(t, "Maria", *s.Get("sess-1").Name)
}

func TestClear_RemovesDraft(t *testing.T) {
	s := draftstore.New()
	s.Update("sess-1", &domain.ReservationDraft{Name: ptr.Ptr("Maria")})

	s.Clear("sess-1")

	assert.True(t, s.Get("sess-1").IsEmpty())
}

func TestUpdate_SweepsExpiredDrafts(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	s := draftstore.NewWithOptions(time.Hour, clock)

	s.Update("old", &domain.ReservationDraft{Name: ptr.Ptr("Maria")})

	now = now.Add(2 * time.Hour)
	s.Update("fresh", &domain.ReservationDraft{Name: ptr.Ptr("João")})

	assert.True(t, s.Get("old").IsEmpty(), "untouched draft past max age is dropped")
	assert.False(t, s.Get("fresh").IsEmpty())
}
