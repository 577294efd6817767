package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaults(t *testing.T) {
	dir := t.TempDir()

	store := NewSettingsStore(dir)
	settings, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, "!join", settings.Command)
	assert.Equal(t, "es", settings.Language)
	assert.False(t, settings.Debug)

	// First load writes the file so the operator can edit it.
	_, err = os.Stat(filepath.Join(dir, "config.json"))
	assert.NoError(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store := NewSettingsStore(dir)
	_, err := store.Load()
	require.NoError(t, err)

	want := Settings{
		OAuth:    "token123",
		Channel:  "somechannel",
		Command:  "!enter",
		Language: "en",
		Debug:    true,
		DV:       "streamer",
		APIKey:   "secret",
	}
	require.NoError(t, store.Save(want))
	assert.Equal(t, want, store.Current())

	reopened := NewSettingsStore(dir)
	got, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadCorruptFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{broken"), 0o600))

	store := NewSettingsStore(dir)
	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoadFillsMissingFields(t *testing.T) {
	dir := t.TempDir()
	partial := []byte(`{"channel":"somechannel"}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), partial, 0o600))

	store := NewSettingsStore(dir)
	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "somechannel", settings.Channel)
	assert.Equal(t, "!join", settings.Command)
	assert.Equal(t, "es", settings.Language)
}
