package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/domain"
)

func entry(i int) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:     fmt.Sprintf("id-%d", i),
		User:   fmt.Sprintf("user-%d", i),
		Prize:  "Mug",
		Ingame: "Hero",
		Date:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute),
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewFileStore(t.TempDir())
	store.Load()
	assert.Empty(t, store.Entries())
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "history.json"), []byte("{not json"), 0o600))

	store := NewFileStore(dir)
	store.Load()
	assert.Empty(t, store.Entries())
}

func TestAppendIsMostRecentFirst(t *testing.T) {
	store := NewFileStore(t.TempDir())
	store.Load()

	require.NoError(t, store.Append(entry(1)))
	require.NoError(t, store.Append(entry(2)))
	require.NoError(t, store.Append(entry(3)))

	entries := store.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "id-3", entries[0].ID)
	assert.Equal(t, "id-1", entries[2].ID)
}

func TestAppendEnforcesCap(t *testing.T) {
	store := NewFileStore(t.TempDir())
	store.Load()

	for i := 0; i < 60; i++ {
		require.NoError(t, store.Append(entry(i)))
	}

	entries := store.Entries()
	require.Len(t, entries, 50)
	assert.Equal(t, "id-59", entries[0].ID)
	assert.Equal(t, "id-10", entries[49].ID)
}

func TestAppendPersistsAcrossRestart(t *testing.T) {
	dir := t.TempDir()

	store := NewFileStore(dir)
	store.Load()
	require.NoError(t, store.Append(entry(1)))
	require.NoError(t, store.Append(entry(2)))

	reopened := NewFileStore(dir)
	reopened.Load()
	entries := reopened.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "id-2", entries[0].ID)
	assert.Equal(t, "user-1", entries[1].User)
}

func TestLoadTruncatesOversizedFile(t *testing.T) {
	dir := t.TempDir()

	oversized := make([]domain.HistoryEntry, 70)
	for i := range oversized {
		oversized[i] = entry(i)
	}
	data, err := json.Marshal(oversized)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "history.json"), data, 0o600))

	store := NewFileStore(dir)
	store.Load()
	assert.Len(t, store.Entries(), 50)
}

func TestClear(t *testing.T) {
	dir := t.TempDir()

	store := NewFileStore(dir)
	store.Load()
	require.NoError(t, store.Append(entry(1)))
	require.NoError(t, store.Clear())
	assert.Empty(t, store.Entries())

	// The cleared state is persisted, not just in-memory.
	reopened := NewFileStore(dir)
	reopened.Load()
	assert.Empty(t, reopened.Entries())
}

func TestEntriesReturnsCopy(t *testing.T) {
	store := NewFileStore(t.TempDir())
	store.Load()
	require.NoError(t, store.Append(entry(1)))

	entries := store.Entries()
	entries[0].User = "mutated"

	assert.Equal(t, "user-1", store.Entries()[0].User)
}
