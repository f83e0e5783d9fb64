package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "phone"

// GetConfigDir returns the OS-appropriate configuration directory for phone
func GetConfigDir() (string, error) {
	return filepath.Join(xdg.ConfigHome, appName), nil
}

// GetDataDir returns the directory where the chat database lives
func GetDataDir() (string, error) {
	return filepath.Join(xdg.DataHome, appName), nil
}

// GetPresetsDir returns the directory where preset files are stored
func GetPresetsDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "presets"), nil
}

// EnsureDirs creates the config, preset and data directories if they don't exist
func EnsureDirs() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	presetsDir, err := GetPresetsDir()
	if err != nil {
		return err
	}

	dataDir, err := GetDataDir()
	if err != nil {
		return err
	}

	for _, dir := range []string{configDir, presetsDir, dataDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}
