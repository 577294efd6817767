package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/domain"
)

func TestRecordIsIdempotent(t *testing.T) {
	r := New()

	r.Record("Alice", nil)
	r.Record("Alice", nil)
	r.Record("alice", nil)

	assert.Equal(t, 1, r.Len())
	require.Len(t, r.Eligible(), 1)
	// First sighting's casing is kept for display.
	assert.Equal(t, "Alice", r.Eligible()[0].Name)
	assert.Equal(t, 1, r.Eligible()[0].Weight)
}

func TestRecordRefreshesBadgesWithoutStacking(t *testing.T) {
	r := New()

	r.Record("alice", nil)
	assert.Equal(t, 1, r.Eligible()[0].Weight)

	r.Record("alice", []string{domain.BadgeSubscriber})
	require.Len(t, r.Eligible(), 1)
	assert.Equal(t, 2, r.Eligible()[0].Weight)

	// Repeating with more badges never pushes the weight past 2.
	r.Record("alice", []string{domain.BadgeSubscriber, domain.BadgeVIP, domain.BadgeModerator})
	assert.Equal(t, 2, r.Eligible()[0].Weight)
}

func TestInsertionOrderIsPreserved(t *testing.T) {
	r := New()
	for _, name := range []string{"carol", "alice", "bob"} {
		r.Record(name, nil)
	}

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "carol", all[0].Name)
	assert.Equal(t, "alice", all[1].Name)
	assert.Equal(t, "bob", all[2].Name)
}

func TestEliminate(t *testing.T) {
	r := New()
	r.Record("alice", nil)
	r.Record("bob", nil)

	r.Eliminate("ALICE")

	eligible := r.Eligible()
	require.Len(t, eligible, 1)
	assert.Equal(t, "bob", eligible[0].Name)
	// Eliminated entries stay visible in the full listing.
	assert.Equal(t, 2, r.Len())

	assert.NotPanics(t, func() { r.Eliminate("nobody") })
}

func TestReset(t *testing.T) {
	r := New()
	r.Record("alice", nil)
	r.Record("bob", nil)
	r.Eliminate("alice")

	r.Reset()

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Eligible())

	// The index must be rebuilt from scratch so re-joins work.
	r.Record("alice", nil)
	assert.Equal(t, 1, r.Len())
	assert.False(t, r.Eligible()[0].Eliminated)
}

func TestAddDebug(t *testing.T) {
	r := New()

	r.AddDebug("viewer", "normal")
	r.AddDebug("fan", "sub")
	r.AddDebug("guest", "vip")
	r.AddDebug("keeper", "mod")
	r.AddDebug("", "sub")
	r.AddDebug("fan", "mod") // duplicate, ignored

	all := r.All()
	require.Len(t, all, 4)
	assert.Equal(t, 1, all[0].Weight)
	assert.Equal(t, 2, all[1].Weight)
	assert.Equal(t, []string{domain.BadgeSubscriber}, all[1].Badges)
	assert.Equal(t, []string{domain.BadgeVIP}, all[2].Badges)
	assert.Equal(t, []string{domain.BadgeModerator}, all[3].Badges)
}

func TestGenerateFake(t *testing.T) {
	r := New()
	r.GenerateFake(20)

	// Random names can collide, so only an upper bound is guaranteed.
	assert.LessOrEqual(t, r.Len(), 20)
	assert.Greater(t, r.Len(), 0)
	for _, p := range r.All() {
		assert.Contains(t, p.Name, "User_")
	}
}
