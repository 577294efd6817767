package draw

import (
	"math/rand"
	"time"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/domain"
)

// Selector chooses draw outcomes. Substituted in tests and by the debug
// panel's forced outcomes.
type Selector interface {
	User(eligible []domain.Participant) (domain.Participant, bool)
	Prize(prizes []domain.Prize) (domain.Prize, bool)
}

// Picker implements Selector with a seeded random source.
type Picker struct {
	random *rand.Rand
}

// PickerConfig for the picker.
type PickerConfig struct {
	// Optional seed for testing
	Seed int64
}

func NewPicker(cfg *PickerConfig) *Picker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	return &Picker{random: rand.New(rand.NewSource(seed))}
}

// User performs a single weighted draw over the eligible participants.
// Returns false when the list is empty.
func (p *Picker) User(eligible []domain.Participant) (domain.Participant, bool) {
	if len(eligible) == 0 {
		return domain.Participant{}, false
	}

	total := 0
	for _, e := range eligible {
		total += e.Weight
	}

	return pickWeighted(eligible, p.random.Float64()*float64(total)), true
}

// pickWeighted walks the cumulative weights and returns the first entry past
// the target. The final return is a deliberate fallback: floating-point
// accumulation can end just short of the target, and the draw must still
// produce a winner.
func pickWeighted(eligible []domain.Participant, target float64) domain.Participant {
	cumulative := 0.0
	for _, e := range eligible {
		cumulative += float64(e.Weight)
		if target < cumulative {
			return e
		}
	}
	return eligible[len(eligible)-1]
}

// Prize draws uniformly from the catalog snapshot; prizes are not weighted.
func (p *Picker) Prize(prizes []domain.Prize) (domain.Prize, bool) {
	if len(prizes) == 0 {
		return domain.Prize{}, false
	}
	return prizes[p.random.Intn(len(prizes))], true
}
