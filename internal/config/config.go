/*
Package config handles loading, saving and validating the launcher
configuration.

Configuration is stored as JSON in ~/.beacon.json:

	{
	  "searchEngines": [
	    {"prefix": "g ", "name": "Google", "url": "https://www.google.com/search?q={query}"}
	  ],
	  "settings": {
	    "dataDir": "",
	    "debounceMs": 60
	  }
	}

The delivery thresholds (initial reveal 100, reveal step 50) and the sort
cap (1000) are fixed constants of the ranking core and are intentionally
not configurable here.
*/
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// Config is the root configuration structure.
type Config struct {
	// Engines are the free-text search-engine shortcuts. A query starting
	// with an engine's prefix bypasses ranking entirely.
	Engines []candidate.SearchEngineConfig `json:"searchEngines"`

	// Settings contains global options.
	Settings *Settings `json:"settings,omitempty"`
}

// Settings contains global configuration options.
type Settings struct {
	// DataDir overrides where the history database, app cache and file
	// index live. Empty means ~/.beacon.
	DataDir string `json:"dataDir,omitempty"`

	// DebounceMS is the keystroke debounce before a search cycle starts.
	DebounceMS int `json:"debounceMs,omitempty"`
}

// DefaultDebounceMS is the keystroke debounce applied when the settings
// carry no value.
const DefaultDebounceMS = 60

// NewConfig creates a configuration with the default search engines.
func NewConfig() *Config {
	return &Config{
		Engines: []candidate.SearchEngineConfig{
			{Prefix: "g ", Name: "Google", URL: "https://www.google.com/search?q={query}"},
			{Prefix: "bd ", Name: "Baidu", URL: "https://www.baidu.com/s?wd={query}"},
			{Prefix: "bi ", Name: "Bing", URL: "https://www.bing.com/search?q={query}"},
		},
		Settings: &Settings{
			DebounceMS: DefaultDebounceMS,
		},
	}
}

// GetDefaultConfigPath returns the path to ~/.beacon.json.
func GetDefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".beacon.json"), nil
}

// DataDir resolves the effective data directory.
func (c *Config) DataDir() (string, error) {
	if c.Settings != nil && c.Settings.DataDir != "" {
		return c.Settings.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".beacon"), nil
}

// Debounce returns the effective keystroke debounce in milliseconds.
func (c *Config) Debounce() int {
	if c.Settings != nil && c.Settings.DebounceMS > 0 {
		return c.Settings.DebounceMS
	}
	return DefaultDebounceMS
}

// Load reads the configuration from the default path.
func Load() (*Config, error) {
	path, err := GetDefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadOrCreate loads the configuration, writing the defaults to disk when
// no config file exists yet.
func LoadOrCreate() (*Config, error) {
	path, err := GetDefaultConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		var notFound *ConfigNotFoundError
		if !asConfigNotFound(err, &notFound) {
			return nil, err
		}
		cfg = NewConfig()
		if err := Save(cfg, path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Save writes the configuration to the specified path.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		if os.IsPermission(err) {
			return &PermissionError{
				Path: path,
				Op:   "write",
				Fix:  permissionFix(path),
			}
		}
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
