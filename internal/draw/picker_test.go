package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/domain"
)

func TestUserEmptyRoster(t *testing.T) {
	p := NewPicker(&PickerConfig{Seed: 1})
	_, ok := p.User(nil)
	assert.False(t, ok)
}

func TestUserReturnsMember(t *testing.T) {
	p := NewPicker(&PickerConfig{Seed: 42})
	eligible := []domain.Participant{
		domain.NewParticipant("alice", nil),
		domain.NewParticipant("bob", []string{domain.BadgeVIP}),
		domain.NewParticipant("carol", nil),
	}

	for i := 0; i < 100; i++ {
		winner, ok := p.User(eligible)
		require.True(t, ok)
		assert.Contains(t, []string{"alice", "bob", "carol"}, winner.Name)
	}
}

func TestUserWeightedFrequency(t *testing.T) {
	p := NewPicker(&PickerConfig{Seed: 1337})
	eligible := []domain.Participant{
		domain.NewParticipant("plain", nil),                         // weight 1
		domain.NewParticipant("boosted", []string{domain.BadgeVIP}), // weight 2
	}

	const trials = 30000
	boostedWins := 0
	for i := 0; i < trials; i++ {
		winner, ok := p.User(eligible)
		require.True(t, ok)
		if winner.Name == "boosted" {
			boostedWins++
		}
	}

	// Expected share is 2/3; allow a generous band for sampling noise.
	share := float64(boostedWins) / float64(trials)
	assert.InDelta(t, 2.0/3.0, share, 0.02)
}

func TestPickWeightedFallback(t *testing.T) {
	eligible := []domain.Participant{
		domain.NewParticipant("alice", nil),
		domain.NewParticipant("bob", nil),
	}

	// A target at or past the cumulative total must still land on the last
	// entry instead of falling off the slice.
	winner := pickWeighted(eligible, 2.0)
	assert.Equal(t, "bob", winner.Name)
}

func TestPrize(t *testing.T) {
	p := NewPicker(&PickerConfig{Seed: 7})

	_, ok := p.Prize(nil)
	assert.False(t, ok)

	prizes := []domain.Prize{{ID: "1", Name: "Mug"}, {ID: "2", Name: "Shirt"}}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		prize, ok := p.Prize(prizes)
		require.True(t, ok)
		seen[prize.Name] = true
	}
	assert.True(t, seen["Mug"])
	assert.True(t, seen["Shirt"])
}

func TestSeededPickerIsDeterministic(t *testing.T) {
	eligible := []domain.Participant{
		domain.NewParticipant("alice", nil),
		domain.NewParticipant("bob", nil),
		domain.NewParticipant("carol", nil),
	}

	a := NewPicker(&PickerConfig{Seed: 99})
	b := NewPicker(&PickerConfig{Seed: 99})
	for i := 0; i < 50; i++ {
		wa, _ := a.User(eligible)
		wb, _ := b.User(eligible)
		assert.Equal(t, wa.Name, wb.Name)
	}
}
