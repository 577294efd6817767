package domain

// Phase is the draw state machine phase.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseSpinningUser  Phase = "spinningUser"
	PhaseWaitingName   Phase = "waitingName"
	PhaseSpinningPrize Phase = "spinningPrize"
	PhaseFinished      Phase = "finished"
)

// Snapshot is a read-only view of the draw session, published to the overlay
// and returned to the operator surface.
type Snapshot struct {
	Phase         Phase         `json:"phase"`
	Winner        string        `json:"winner,omitempty"`
	ConfirmedName string        `json:"confirmedName,omitempty"`
	NameConfirmed bool          `json:"nameConfirmed"`
	Countdown     int           `json:"countdown"`
	SelectedPrize *Prize        `json:"selectedPrize,omitempty"`
	Participants  []Participant `json:"participants"`
	Prizes        []Prize       `json:"prizes"`
}

// EventPublisher pushes draw snapshots to connected overlay clients.
type EventPublisher interface {
	Publish(snap Snapshot)
}

// DrawController is the subset of engine operations the operator surface
// consumes. Guard rejections (wrong phase, empty roster) are silent no-ops.
type DrawController interface {
	StartDraw()
	AdvanceToPrize()
	Acknowledge()
	ResetAll()
	Snapshot() Snapshot
	AddDebugParticipant(name, role string)
	GenerateFakeParticipants(n int)
	ForceOutcome(winner, prize string)
}
