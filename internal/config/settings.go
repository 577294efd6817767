package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Settings are the operator-editable values stored in config.json. The file
// is created with defaults on first start and rewritten after every operator
// edit, matching the layout the desktop build used.
type Settings struct {
	OAuth    string `json:"oauth"`
	Channel  string `json:"channel"`
	Command  string `json:"command"`
	Language string `json:"language"`
	Debug    bool   `json:"debug"`
	DV       string `json:"dv"`
	APIKey   string `json:"apiKey"`
}

// DefaultSettings mirrors the defaults the app ships with.
func DefaultSettings() Settings {
	return Settings{
		Command:  "!join",
		Language: "es",
	}
}

// SettingsStore loads and saves the settings file.
type SettingsStore struct {
	path string

	mu      sync.RWMutex
	current Settings
}

func NewSettingsStore(dir string) *SettingsStore {
	return &SettingsStore{path: filepath.Join(dir, "config.json")}
}

// Load reads the settings file, creating it with defaults when absent.
// A corrupt file falls back to defaults rather than failing startup.
func (s *SettingsStore) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.current = DefaultSettings()
		return s.current, s.writeLocked()
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		s.current = DefaultSettings()
		return s.current, nil
	}
	if settings.Command == "" {
		settings.Command = "!join"
	}
	if settings.Language == "" {
		settings.Language = "es"
	}

	s.current = settings
	return settings, nil
}

// Current returns the last loaded or saved settings.
func (s *SettingsStore) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Save persists new settings atomically.
func (s *SettingsStore) Save(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = settings
	return s.writeLocked()
}

func (s *SettingsStore) writeLocked() error {
	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace settings: %w", err)
	}
	return nil
}
