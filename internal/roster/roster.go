// Package roster maintains the live set of draw participants. It is owned by
// the draw engine and only ever touched from its actor goroutine, so it does
// no locking of its own.
package roster

import (
	"fmt"
	"math/rand"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/domain"
)

// Roster is an insertion-ordered collection of participants, at most one entry
// per canonical username. Insertion order matters for display only.
type Roster struct {
	entries []domain.Participant
	index   map[string]int
}

func New() *Roster {
	return &Roster{index: make(map[string]int)}
}

// Record inserts a participant for a qualifying join command, or refreshes the
// weight and badges of the existing entry. Idempotent under repeated commands:
// no duplicates, no weight stacking.
func (r *Roster) Record(user string, badges []string) {
	p := domain.NewParticipant(user, badges)
	if i, ok := r.index[p.Key]; ok {
		existing := &r.entries[i]
		existing.Weight = p.Weight
		existing.Badges = p.Badges
		return
	}
	r.index[p.Key] = len(r.entries)
	r.entries = append(r.entries, p)
}

// Eligible returns the ordered subsequence of non-eliminated participants.
func (r *Roster) Eligible() []domain.Participant {
	eligible := make([]domain.Participant, 0, len(r.entries))
	for _, p := range r.entries {
		if !p.Eliminated {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

// All returns every participant in insertion order.
func (r *Roster) All() []domain.Participant {
	out := make([]domain.Participant, len(r.entries))
	copy(out, r.entries)
	return out
}

// Eliminate marks a participant as out of the draw. Absent users are a no-op.
func (r *Roster) Eliminate(user string) {
	if i, ok := r.index[domain.CanonicalName(user)]; ok {
		r.entries[i].Eliminated = true
	}
}

// Reset empties the roster entirely.
func (r *Roster) Reset() {
	r.entries = nil
	r.index = make(map[string]int)
}

// Len returns the number of participants, eliminated included.
func (r *Roster) Len() int {
	return len(r.entries)
}

// AddDebug inserts a participant from the debug panel with a named role
// instead of parsed badge tags. Duplicate names are ignored.
func (r *Roster) AddDebug(name, role string) {
	if name == "" {
		return
	}
	if _, ok := r.index[domain.CanonicalName(name)]; ok {
		return
	}
	var badges []string
	switch role {
	case "sub":
		badges = []string{domain.BadgeSubscriber}
	case "vip":
		badges = []string{domain.BadgeVIP}
	case "mod":
		badges = []string{domain.BadgeModerator}
	}
	r.Record(name, badges)
}

// GenerateFake fills the roster with random debug users across all roles.
func (r *Roster) GenerateFake(n int) {
	roles := []string{"normal", "sub", "vip", "mod"}
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("User_%04d", rand.Intn(10000))
		r.AddDebug(name, roles[rand.Intn(len(roles))])
	}
}
