package config

import (
	"fmt"
	"strings"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// ValidateEngine checks a single search-engine shortcut.
func ValidateEngine(e candidate.SearchEngineConfig) error {
	if e.Prefix == "" {
		return fmt.Errorf("engine '%s': empty prefix", e.Name)
	}
	if e.Name == "" {
		return fmt.Errorf("engine with prefix %q: empty name", e.Prefix)
	}
	if !strings.Contains(e.URL, "{query}") {
		return fmt.Errorf("engine '%s': url missing {query} placeholder", e.Name)
	}
	return nil
}

// Validate checks the whole configuration: every engine must be valid and
// prefixes must be unique, otherwise shortcut matching would be ambiguous.
func (c *Config) Validate() error {
	seen := make(map[string]bool)
	for _, e := range c.Engines {
		if err := ValidateEngine(e); err != nil {
			return err
		}
		if seen[e.Prefix] {
			return fmt.Errorf("duplicate engine prefix %q", e.Prefix)
		}
		seen[e.Prefix] = true
	}

	if c.Settings != nil && c.Settings.DebounceMS < 0 {
		return fmt.Errorf("debounceMs must not be negative")
	}
	return nil
}
