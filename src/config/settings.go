package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type Settings struct {
	Prompt   PromptSettings   `toml:"prompt"`
	Database DatabaseSettings `toml:"database"`
}

type PromptSettings struct {
	// MaxMemory is the number of history messages included in the payload.
	MaxMemory int `toml:"max_memory"`
	// MemoryWindow is the number of messages excerpted from a linked chat.
	MemoryWindow int `toml:"memory_window"`
	// StatusStalenessMinutes is how old a status may be before a refresh
	// instruction is demanded.
	StatusStalenessMinutes int `toml:"status_staleness_minutes"`
}

type DatabaseSettings struct {
	Path string `toml:"path"`
}

// Default thresholds used when the config file does not set them.
const (
	DefaultMaxMemory       = 20
	DefaultMemoryWindow    = 5
	DefaultStatusStaleness = 30 * time.Minute
)

func defaultSettings() *Settings {
	return &Settings{
		Prompt: PromptSettings{
			MaxMemory:              DefaultMaxMemory,
			MemoryWindow:           DefaultMemoryWindow,
			StatusStalenessMinutes: int(DefaultStatusStaleness.Minutes()),
		},
	}
}

// LoadSettings reads config.toml from the config directory, falling back to
// defaults when the file is absent.
func LoadSettings() (*Settings, error) {
	settings := defaultSettings()

	configDir, err := GetConfigDir()
	if err != nil {
		return settings, nil
	}

	configPath := filepath.Join(configDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, err
	}

	if _, err := toml.Decode(string(data), settings); err != nil {
		return nil, err
	}

	if settings.Prompt.MaxMemory <= 0 {
		settings.Prompt.MaxMemory = DefaultMaxMemory
	}
	if settings.Prompt.MemoryWindow <= 0 {
		settings.Prompt.MemoryWindow = DefaultMemoryWindow
	}
	if settings.Prompt.StatusStalenessMinutes <= 0 {
		settings.Prompt.StatusStalenessMinutes = int(DefaultStatusStaleness.Minutes())
	}

	return settings, nil
}

// StatusStaleness returns the staleness threshold as a duration.
func (p PromptSettings) StatusStaleness() time.Duration {
	return time.Duration(p.StatusStalenessMinutes) * time.Minute
}

// DatabasePath resolves the chat database location, defaulting to the data dir.
func (s *Settings) DatabasePath() (string, error) {
	if s.Database.Path != "" {
		return s.Database.Path, nil
	}
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "phone.db"), nil
}
