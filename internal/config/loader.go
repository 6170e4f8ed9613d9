package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// LoadFrom reads configuration from a specific path with enhanced error
// handling: missing files, permission problems and malformed JSON each get
// a typed error with an actionable hint.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigNotFoundError{
				Path: path,
				Hint: "Run 'beacon' once to create a default configuration",
			}
		}
		return nil, fmt.Errorf("failed to access config: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &PermissionError{
				Path: path,
				Op:   "read",
				Fix:  permissionFix(path),
			}
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &InvalidConfigError{
			Path:    path,
			Message: fmt.Sprintf("JSON parse error: %v", err),
			Hint:    "Fix the syntax or delete the file to regenerate defaults",
		}
	}

	if cfg.Engines == nil {
		cfg.Engines = []candidate.SearchEngineConfig{}
	}
	return &cfg, nil
}

// asConfigNotFound wraps errors.As so callers don't need the errors import
// just to branch on the missing-config case.
func asConfigNotFound(err error, target **ConfigNotFoundError) bool {
	return errors.As(err, target)
}
