package domain

import "time"

// HistoryEntry is the immutable record of one completed draw.
type HistoryEntry struct {
	ID     string    `json:"id"`
	User   string    `json:"user"`
	Prize  string    `json:"prize"`
	Ingame string    `json:"ingame"`
	Date   time.Time `json:"date"`
}

// HistoryStore persists completed draws, most-recent-first, capped.
type HistoryStore interface {
	Append(entry HistoryEntry) error
	Entries() []HistoryEntry
	Clear() error
}
