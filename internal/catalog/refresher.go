package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/domain"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/metrics"
)

const defaultRefreshInterval = 5 * time.Second

// DrawState is the engine subset the refresher needs: it only refreshes the
// snapshot while no draw is active.
type DrawState interface {
	Phase() domain.Phase
	SetPrizes(prizes []domain.Prize)
}

// Status is the last fetch outcome, shown on the operator surface.
type Status struct {
	OK        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Refresher periodically pulls the prize catalog and hands the snapshot to
// the engine. Fetch failures keep the last known snapshot.
type Refresher struct {
	source domain.PrizeSource
	engine DrawState
	clock  clockwork.Clock

	mu     sync.RWMutex
	status Status
}

func NewRefresher(source domain.PrizeSource, engine DrawState, clock clockwork.Clock) *Refresher {
	return &Refresher{source: source, engine: engine, clock: clock}
}

// Run fetches once immediately, then on every tick until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	r.refresh(ctx)

	ticker := r.clock.NewTicker(defaultRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	if r.engine.Phase() != domain.PhaseIdle {
		return
	}

	prizes, err := r.source.FetchPrizes(ctx)
	now := r.clock.Now()
	if err != nil {
		metrics.CatalogFetchErrors.Inc()
		slog.Warn("Prize catalog refresh failed", "error", err)
		r.setStatus(Status{OK: false, Error: err.Error(), CheckedAt: now})
		return
	}

	r.engine.SetPrizes(prizes)
	r.setStatus(Status{OK: true, CheckedAt: now})
}

// Status returns the outcome of the most recent fetch attempt.
func (r *Refresher) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

func (r *Refresher) setStatus(s Status) {
	r.mu.Lock()
	r.status = s
	r.mu.Unlock()
}
