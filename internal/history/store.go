// Package history persists the record of completed draws to history.json.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/domain"
)

// maxEntries caps the log; the oldest entries are evicted first.
const maxEntries = 50

// FileStore keeps the most-recent-first sequence in memory and rewrites the
// file synchronously on every append.
type FileStore struct {
	path string

	mu      sync.RWMutex
	entries []domain.HistoryEntry
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, "history.json")}
}

// Load reads the persisted sequence. A missing or corrupt file is treated as
// an empty history, never a startup failure.
func (s *FileStore) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("Failed to read history file, starting empty", "error", err)
		}
		s.entries = nil
		return
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("History file is corrupt, starting empty", "error", err)
		s.entries = nil
		return
	}
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}
	s.entries = entries
}

// Append prepends the entry, truncates to the cap and persists synchronously
// before returning.
func (s *FileStore) Append(entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]domain.HistoryEntry{entry}, s.entries...)
	if len(s.entries) > maxEntries {
		s.entries = s.entries[:maxEntries]
	}
	return s.writeLocked()
}

// Entries returns the sequence, most recent first.
func (s *FileStore) Entries() []domain.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear empties both the in-memory sequence and the persisted file.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return s.writeLocked()
}

func (s *FileStore) writeLocked() error {
	entries := s.entries
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace history: %w", err)
	}
	return nil
}
