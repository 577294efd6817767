package draw

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/config"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/domain"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/i18n"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/metrics"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/roster"
)

// Config holds the engine timings. The spin durations are presentation
// pacing; the confirm timeout is the winner's response deadline.
type Config struct {
	SpinDuration     time.Duration
	ConfirmTimeout   time.Duration
	RerollGrace      time.Duration
	SinglePrizeDelay time.Duration
}

// DefaultConfig matches the pacing of the desktop build.
func DefaultConfig() Config {
	return Config{
		SpinDuration:     5200 * time.Millisecond,
		ConfirmTimeout:   30 * time.Second,
		RerollGrace:      800 * time.Millisecond,
		SinglePrizeDelay: 500 * time.Millisecond,
	}
}

// --- Command types ---

type engineCmd interface{ engineCmd() }

type cmdChatMessage struct {
	msg *domain.ChatMessage
}

func (cmdChatMessage) engineCmd() {}

type cmdStartDraw struct{}

func (cmdStartDraw) engineCmd() {}

type cmdAdvanceToPrize struct{}

func (cmdAdvanceToPrize) engineCmd() {}

type cmdAcknowledge struct{}

func (cmdAcknowledge) engineCmd() {}

type cmdResetAll struct{}

func (cmdResetAll) engineCmd() {}

type cmdSetPrizes struct {
	prizes []domain.Prize
}

func (cmdSetPrizes) engineCmd() {}

type cmdSnapshot struct {
	replyCh chan domain.Snapshot
}

func (cmdSnapshot) engineCmd() {}

type cmdPhase struct {
	replyCh chan domain.Phase
}

func (cmdPhase) engineCmd() {}

type cmdAddDebug struct {
	name string
	role string
}

func (cmdAddDebug) engineCmd() {}

type cmdGenerateFake struct {
	n int
}

func (cmdGenerateFake) engineCmd() {}

type cmdForceOutcome struct {
	winner string
	prize  string
}

func (cmdForceOutcome) engineCmd() {}

type cmdStop struct {
	doneCh chan struct{}
}

func (cmdStop) engineCmd() {}

// --- Engine ---

// Engine is the draw state machine. It runs as an actor: chat events, operator
// commands and timer expirations are all consumed on one goroutine, so the
// roster needs no locking and deadline expiry vs. name confirmation is a
// first-wins decision with no race.
type Engine struct {
	cmdCh    chan engineCmd
	cfg      Config
	clock    clockwork.Clock
	selector Selector
	sender   domain.ChatSender
	history  domain.HistoryStore
	settings func() config.Settings

	publisher domain.EventPublisher

	roster *roster.Roster

	phase         domain.Phase
	winner        *domain.Participant
	confirmedName string
	nameConfirmed bool
	countdownLeft int
	selectedPrize *domain.Prize
	prizes        []domain.Prize

	forcedWinner string
	forcedPrize  string

	// At most one pending phase timer exists at a time; its meaning follows
	// from the phase (reveal, deadline, finish delay, or reroll grace).
	// A stopped timer may already have fired into its channel; clearing the
	// field guarantees the stale value is never read.
	phaseTimer clockwork.Timer
	countdown  clockwork.Ticker
}

func NewEngine(cfg Config, clock clockwork.Clock, selector Selector, sender domain.ChatSender, history domain.HistoryStore, settings func() config.Settings) *Engine {
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	return &Engine{
		cmdCh:    make(chan engineCmd, 512),
		cfg:      cfg,
		clock:    clock,
		selector: selector,
		sender:   sender,
		history:  history,
		settings: settings,
		roster:   roster.New(),
		phase:    domain.PhaseIdle,
	}
}

// SetPublisher sets the overlay publisher. Resolves the circular dependency
// between engine and hub; must be called before Start.
func (e *Engine) SetPublisher(p domain.EventPublisher) {
	e.publisher = p
}

// Start begins the actor goroutine.
func (e *Engine) Start() {
	go e.run()
}

func (e *Engine) run() {
	for {
		var timerC, tickerC <-chan time.Time
		if e.phaseTimer != nil {
			timerC = e.phaseTimer.Chan()
		}
		if e.countdown != nil {
			tickerC = e.countdown.Chan()
		}

		select {
		case cmd := <-e.cmdCh:
			if stop, ok := cmd.(cmdStop); ok {
				e.stopTimers()
				close(stop.doneCh)
				return
			}
			e.handle(cmd)
		case <-timerC:
			e.phaseTimer = nil
			e.handleTimerFired()
		case <-tickerC:
			e.handleCountdownTick()
		}
	}
}

func (e *Engine) handle(cmd engineCmd) {
	switch c := cmd.(type) {
	case cmdChatMessage:
		e.handleChatMessage(c.msg)
	case cmdStartDraw:
		e.handleStartDraw()
	case cmdAdvanceToPrize:
		e.handleAdvanceToPrize()
	case cmdAcknowledge:
		e.handleAcknowledge()
	case cmdResetAll:
		e.handleResetAll()
	case cmdSetPrizes:
		e.handleSetPrizes(c.prizes)
	case cmdSnapshot:
		c.replyCh <- e.snapshot()
	case cmdPhase:
		c.replyCh <- e.phase
	case cmdAddDebug:
		e.roster.AddDebug(c.name, c.role)
		e.publishState()
	case cmdGenerateFake:
		e.roster.GenerateFake(c.n)
		e.publishState()
	case cmdForceOutcome:
		e.forcedWinner = c.winner
		e.forcedPrize = c.prize
	}
}

func (e *Engine) handleChatMessage(msg *domain.ChatMessage) {
	metrics.ChatMessages.Inc()

	settings := e.settings()
	if strings.EqualFold(strings.TrimSpace(msg.Text), strings.TrimSpace(settings.Command)) {
		e.roster.Record(msg.User, msg.Badges)
		metrics.JoinsTotal.Inc()
		e.publishState()
	}

	if e.phase != domain.PhaseWaitingName || e.nameConfirmed || e.winner == nil {
		return
	}
	if domain.CanonicalName(msg.User) != e.winner.Key {
		return
	}
	if !strings.HasPrefix(msg.Text, "!") {
		return
	}
	name := strings.TrimSpace(strings.TrimPrefix(msg.Text, "!"))
	if name == "" {
		return
	}
	e.confirmName(name)
}

func (e *Engine) confirmName(name string) {
	// Cancel the deadline the instant the submission is accepted. If the
	// timer already fired, the stale expiry sits in a channel we no longer
	// select on, so no disqualification can follow a confirmation.
	e.stopTimers()
	e.confirmedName = name
	e.nameConfirmed = true
	e.countdownLeft = 0
	slog.Info("In-game name confirmed", "winner", e.winner.Name, "name", name)
	e.publishState()
}

func (e *Engine) handleStartDraw() {
	if e.phase != domain.PhaseIdle {
		return
	}
	eligible := e.roster.Eligible()
	if len(eligible) == 0 {
		return
	}

	// The winner is fixed here, before the reveal animation. The spin that
	// follows is cosmetic and never re-samples.
	winner, ok := e.pickWinner(eligible)
	if !ok {
		return
	}

	e.stopTimers()
	e.winner = &winner
	e.phase = domain.PhaseSpinningUser
	e.phaseTimer = e.clock.NewTimer(e.cfg.SpinDuration)
	metrics.DrawsStarted.Inc()
	slog.Info("Draw started", "winner", winner.Name, "eligible", len(eligible))
	e.publishState()
}

func (e *Engine) pickWinner(eligible []domain.Participant) (domain.Participant, bool) {
	if e.settings().Debug && e.forcedWinner != "" {
		key := domain.CanonicalName(e.forcedWinner)
		for _, p := range eligible {
			if p.Key == key {
				return p, true
			}
		}
	}
	return e.selector.User(eligible)
}

func (e *Engine) handleTimerFired() {
	switch e.phase {
	case domain.PhaseSpinningUser:
		e.revealWinner()
	case domain.PhaseWaitingName:
		e.disqualifyWinner()
	case domain.PhaseSpinningPrize:
		e.finishDraw()
	case domain.PhaseIdle:
		// Reroll grace elapsed after a disqualification.
		e.handleStartDraw()
	}
}

func (e *Engine) revealWinner() {
	e.phase = domain.PhaseWaitingName
	e.nameConfirmed = false
	e.countdownLeft = int(e.cfg.ConfirmTimeout / time.Second)
	e.sender.Send(i18n.For(e.settings().Language).WinnerPrompt(e.winner.Name))
	e.phaseTimer = e.clock.NewTimer(e.cfg.ConfirmTimeout)
	e.countdown = e.clock.NewTicker(time.Second)
	e.publishState()
}

func (e *Engine) handleCountdownTick() {
	if e.phase != domain.PhaseWaitingName || e.countdownLeft <= 0 {
		return
	}
	e.countdownLeft--
	e.publishState()
}

func (e *Engine) disqualifyWinner() {
	winner := e.winner.Name
	e.stopTimers()
	e.roster.Eliminate(winner)
	e.sender.Send(i18n.For(e.settings().Language).Disqualified(winner))
	metrics.DrawsDisqualified.Inc()
	slog.Info("Winner disqualified for not responding", "winner", winner)

	e.clearSession()
	e.phase = domain.PhaseIdle
	e.publishState()

	// Automatic reroll after a short grace, provided anyone is left.
	if len(e.roster.Eligible()) > 0 {
		e.phaseTimer = e.clock.NewTimer(e.cfg.RerollGrace)
	}
}

func (e *Engine) handleAdvanceToPrize() {
	if e.phase != domain.PhaseWaitingName || !e.nameConfirmed {
		return
	}

	if len(e.prizes) == 0 {
		// No prizes is recoverable: abort the prize phase and stay put so
		// the operator can retry once the catalog recovers.
		slog.Warn("Prize phase aborted: catalog is empty")
		e.publishState()
		return
	}

	if len(e.prizes) == 1 {
		// Trivial selection: skip the spin entirely.
		prize := e.prizes[0]
		e.selectedPrize = &prize
		e.phase = domain.PhaseSpinningPrize
		e.phaseTimer = e.clock.NewTimer(e.cfg.SinglePrizeDelay)
		e.publishState()
		return
	}

	prize, ok := e.pickPrize()
	if !ok {
		return
	}
	e.selectedPrize = &prize
	e.phase = domain.PhaseSpinningPrize
	e.phaseTimer = e.clock.NewTimer(e.cfg.SpinDuration)
	e.publishState()
}

func (e *Engine) pickPrize() (domain.Prize, bool) {
	if e.settings().Debug && e.forcedPrize != "" {
		for _, p := range e.prizes {
			if p.Name == e.forcedPrize {
				return p, true
			}
		}
	}
	return e.selector.Prize(e.prizes)
}

func (e *Engine) finishDraw() {
	e.phase = domain.PhaseFinished

	ingame := e.confirmedName
	if ingame == "" {
		ingame = "-"
	}
	entry := domain.HistoryEntry{
		ID:     uuid.New().String(),
		User:   e.winner.Name,
		Prize:  e.selectedPrize.Name,
		Ingame: ingame,
		Date:   e.clock.Now(),
	}
	// The session stays authoritative even if persistence fails.
	if err := e.history.Append(entry); err != nil {
		slog.Error("Failed to persist history entry", "error", err)
	}

	e.roster.Eliminate(e.winner.Name)
	e.sender.Send(i18n.For(e.settings().Language).Award(e.winner.Name, e.selectedPrize.Name))
	metrics.DrawsCompleted.Inc()
	slog.Info("Draw finished", "winner", e.winner.Name, "prize", e.selectedPrize.Name, "ingame", ingame)
	e.publishState()
}

func (e *Engine) handleAcknowledge() {
	if e.phase != domain.PhaseFinished {
		return
	}
	e.clearSession()
	e.phase = domain.PhaseIdle
	e.publishState()
}

func (e *Engine) handleResetAll() {
	e.stopTimers()
	e.roster.Reset()
	e.clearSession()
	e.phase = domain.PhaseIdle
	slog.Info("Draw and roster reset")
	e.publishState()
}

func (e *Engine) handleSetPrizes(prizes []domain.Prize) {
	// The snapshot must not change mid-draw.
	if e.phase != domain.PhaseIdle {
		return
	}
	e.prizes = prizes
	e.publishState()
}

func (e *Engine) clearSession() {
	e.stopTimers()
	e.winner = nil
	e.confirmedName = ""
	e.nameConfirmed = false
	e.countdownLeft = 0
	e.selectedPrize = nil
}

func (e *Engine) stopTimers() {
	if e.phaseTimer != nil {
		e.phaseTimer.Stop()
		e.phaseTimer = nil
	}
	if e.countdown != nil {
		e.countdown.Stop()
		e.countdown = nil
	}
}

func (e *Engine) snapshot() domain.Snapshot {
	snap := domain.Snapshot{
		Phase:         e.phase,
		NameConfirmed: e.nameConfirmed,
		ConfirmedName: e.confirmedName,
		Countdown:     e.countdownLeft,
		Participants:  e.roster.All(),
		Prizes:        append([]domain.Prize{}, e.prizes...),
	}
	if e.winner != nil {
		snap.Winner = e.winner.Name
	}
	if e.selectedPrize != nil {
		prize := *e.selectedPrize
		snap.SelectedPrize = &prize
	}
	return snap
}

func (e *Engine) publishState() {
	metrics.ParticipantsActive.Set(float64(len(e.roster.Eligible())))
	if e.publisher != nil {
		e.publisher.Publish(e.snapshot())
	}
}

// --- Public API ---

// HandleChatMessage feeds one parsed chat message into the actor.
func (e *Engine) HandleChatMessage(msg *domain.ChatMessage) {
	e.cmdCh <- cmdChatMessage{msg: msg}
}

// StartDraw triggers idle → spinningUser. A no-op while a draw is in
// progress or when nobody is eligible.
func (e *Engine) StartDraw() {
	e.cmdCh <- cmdStartDraw{}
}

// AdvanceToPrize triggers waitingName → spinningPrize once the in-game name
// is confirmed. A no-op from any other phase.
func (e *Engine) AdvanceToPrize() {
	e.cmdCh <- cmdAdvanceToPrize{}
}

// Acknowledge clears a finished draw back to idle.
func (e *Engine) Acknowledge() {
	e.cmdCh <- cmdAcknowledge{}
}

// ResetAll abandons any in-progress draw and empties the roster.
func (e *Engine) ResetAll() {
	e.cmdCh <- cmdResetAll{}
}

// SetPrizes replaces the prize snapshot. Dropped unless the engine is idle.
func (e *Engine) SetPrizes(prizes []domain.Prize) {
	e.cmdCh <- cmdSetPrizes{prizes: prizes}
}

// Snapshot returns the current session view. Because the actor consumes
// commands in order, a snapshot requested after another call reflects it.
func (e *Engine) Snapshot() domain.Snapshot {
	replyCh := make(chan domain.Snapshot, 1)
	e.cmdCh <- cmdSnapshot{replyCh: replyCh}
	return <-replyCh
}

// Phase returns the current phase. Used by the catalog refresher to suppress
// refreshes while a draw is active.
func (e *Engine) Phase() domain.Phase {
	replyCh := make(chan domain.Phase, 1)
	e.cmdCh <- cmdPhase{replyCh: replyCh}
	return <-replyCh
}

// AddDebugParticipant inserts a fake participant from the debug panel.
func (e *Engine) AddDebugParticipant(name, role string) {
	e.cmdCh <- cmdAddDebug{name: name, role: role}
}

// GenerateFakeParticipants fills the roster with random debug users.
func (e *Engine) GenerateFakeParticipants(n int) {
	e.cmdCh <- cmdGenerateFake{n: n}
}

// ForceOutcome pins the next winner and prize. Honored in debug mode only.
func (e *Engine) ForceOutcome(winner, prize string) {
	e.cmdCh <- cmdForceOutcome{winner: winner, prize: prize}
}

// Stop shuts the actor down.
func (e *Engine) Stop() {
	doneCh := make(chan struct{})
	e.cmdCh <- cmdStop{doneCh: doneCh}
	<-doneCh
}
