package config

import (
	"fmt"
	"runtime"
)

// PermissionError represents a permission-related config error.
type PermissionError struct {
	Path string
	Op   string // "read" or "write"
	Fix  string // suggested fix command
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied (cannot %s config): %s\nFix: %s", e.Op, e.Path, e.Fix)
}

// ConfigNotFoundError represents a missing config file.
type ConfigNotFoundError struct {
	Path string
	Hint string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("config file not found: %s\n%s", e.Path, e.Hint)
}

// InvalidConfigError represents a malformed config file.
type InvalidConfigError struct {
	Path    string
	Message string
	Hint    string
}

func (e *InvalidConfigError) Error() string {
	msg := fmt.Sprintf("invalid config: %s", e.Path)
	if e.Message != "" {
		msg += "\n" + e.Message
	}
	if e.Hint != "" {
		msg += "\n" + e.Hint
	}
	return msg
}

// permissionFix returns a platform-specific fix suggestion.
func permissionFix(path string) string {
	switch runtime.GOOS {
	case "windows":
		return fmt.Sprintf("Right-click %s → Properties → Security → Edit permissions", path)
	default:
		return fmt.Sprintf("Run: chmod 644 %s", path)
	}
}
