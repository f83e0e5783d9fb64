// Package preset loads named sampling presets from TOML files, checking the
// user's config directory first and falling back to embedded defaults.
package preset

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/lingki1/phone-sub002/src/config"
	"github.com/lingki1/phone-sub002/src/core"
	"github.com/lingki1/phone-sub002/src/errors"
)

//go:embed data/*.toml
var embeddedPresets embed.FS

var (
	presetCache     = make(map[string]*core.PresetConfig)
	presetCacheLock sync.RWMutex
)

// LoadPreset loads a preset by name, checking the user config directory
// first and falling back to embedded presets.
func LoadPreset(name string) (*core.PresetConfig, error) {
	normalized := strings.ToLower(name)

	presetCacheLock.RLock()
	if cached, ok := presetCache[normalized]; ok {
		presetCacheLock.RUnlock()
		return cached, nil
	}
	presetCacheLock.RUnlock()

	preset, err := loadFromUserConfig(normalized)
	if err != nil {
		preset, err = loadFromEmbedded(normalized)
	}
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrPresetNotFound, "preset %q", name)
	}

	if preset.ID == "" {
		preset.ID = normalized
	}
	if preset.Name == "" {
		preset.Name = name
	}

	cachePreset(normalized, preset)
	return preset, nil
}

func loadFromUserConfig(name string) (*core.PresetConfig, error) {
	presetsDir, err := config.GetPresetsDir()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(presetsDir, name+".toml"))
	if err != nil {
		return nil, err
	}
	return parsePreset(data)
}

func loadFromEmbedded(name string) (*core.PresetConfig, error) {
	data, err := embeddedPresets.ReadFile(fmt.Sprintf("data/%s.toml", name))
	if err != nil {
		return nil, err
	}
	return parsePreset(data)
}

func parsePreset(data []byte) (*core.PresetConfig, error) {
	var preset core.PresetConfig
	if _, err := toml.Decode(string(data), &preset); err != nil {
		return nil, fmt.Errorf("failed to parse preset file: %w", err)
	}
	return &preset, nil
}

func cachePreset(key string, preset *core.PresetConfig) {
	presetCacheLock.Lock()
	defer presetCacheLock.Unlock()
	presetCache[key] = preset
}

// ListPresets returns the available preset names, user-defined and embedded
// merged, sorted and de-duplicated.
func ListPresets() []string {
	seen := make(map[string]bool)
	var names []string

	add := func(fileName string) {
		if !strings.HasSuffix(fileName, ".toml") {
			return
		}
		name := strings.TrimSuffix(fileName, ".toml")
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	if entries, err := embeddedPresets.ReadDir("data"); err == nil {
		for _, entry := range entries {
			if !entry.IsDir() {
				add(entry.Name())
			}
		}
	}

	if presetsDir, err := config.GetPresetsDir(); err == nil {
		if entries, err := os.ReadDir(presetsDir); err == nil {
			for _, entry := range entries {
				if !entry.IsDir() {
					add(entry.Name())
				}
			}
		}
	}

	sort.Strings(names)
	return names
}
