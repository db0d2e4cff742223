package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appDirName        = "burrow"
	configFileName    = "config.json"
	whitelistFileName = "whitelist"
)

func DefaultConfig() Config {
	return Config{
		AnalyzePath:   ".",
		Top:           10,
		TUI:           false,
		AssumeYes:     true,
		Theme:         "dark",
		CacheListings: true,
	}
}

func ConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appDirName, configFileName)
}

func WhitelistPath() string {
	return filepath.Join(xdg.ConfigHome, appDirName, whitelistFileName)
}

func CacheDir() string {
	return filepath.Join(xdg.CacheHome, appDirName)
}

func LoadConfig() (Config, error) {
	return loadConfigFrom(ConfigPath())
}

func loadConfigFrom(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}
	var stored fileConfig
	if err := json.Unmarshal(data, &stored); err != nil {
		return config, err
	}
	return mergeConfig(config, stored), nil
}

func SaveConfig(config Config) error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeConfig(base Config, stored fileConfig) Config {
	merged := base
	if stored.AnalyzePath != nil {
		merged.AnalyzePath = *stored.AnalyzePath
	}
	if stored.Top != nil && *stored.Top > 0 {
		merged.Top = *stored.Top
	}
	if stored.TUI != nil {
		merged.TUI = *stored.TUI
	}
	if stored.AssumeYes != nil {
		merged.AssumeYes = *stored.AssumeYes
	}
	if stored.Theme != nil {
		merged.Theme = *stored.Theme
	}
	if stored.CacheListings != nil {
		merged.CacheListings = *stored.CacheListings
	}
	return merged
}
