package domain

import "strings"

// Recognized badge tags. Any of them caps the participant weight at 2;
// badges do not stack.
const (
	BadgeVIP        = "vip"
	BadgeSubscriber = "subscriber"
	BadgeModerator  = "moderator"
)

// Participant is one chat user entered into the draw. Constructed once at
// ingestion with all defaulting applied; consumers never normalize.
type Participant struct {
	// Name keeps the original casing for display.
	Name string `json:"name"`
	// Key is the canonical lower-cased identity used for lookups.
	Key        string   `json:"-"`
	Weight     int      `json:"weight"`
	Badges     []string `json:"badges"`
	Eliminated bool     `json:"eliminated"`
}

// NewParticipant builds a normalized participant from a display name and the
// recognized badge tags observed on their message.
func NewParticipant(name string, badges []string) Participant {
	p := Participant{
		Name:   name,
		Key:    CanonicalName(name),
		Weight: 1,
		Badges: []string{},
	}
	for _, b := range badges {
		switch b {
		case BadgeVIP, BadgeSubscriber, BadgeModerator:
			p.Weight = 2
			p.Badges = append(p.Badges, b)
		}
	}
	return p
}

// CanonicalName lower-cases a username for identity comparison.
func CanonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
