/*
Package launch opens a selected result with the operating system.

Filesystem paths and web/mail URIs go through the platform opener
(explorer, open, xdg-open). Special shell locations ("control",
"ms-settings:", CLSID virtual folders) are routed through the Windows
shell. Synthetic in-app targets (memo://, plugin://, ai://, json://,
history://) have no external handler and are rejected so the UI layer
knows to handle them itself.
*/
package launch

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// internalSchemes are targets only the launcher UI itself can handle.
var internalSchemes = []string{"memo://", "plugin://", "ai://", "json://", "history://"}

// ErrInternalTarget is returned for synthetic in-app targets.
type ErrInternalTarget struct {
	Path string
}

func (e *ErrInternalTarget) Error() string {
	return fmt.Sprintf("target %q is handled inside the launcher, not by the OS", e.Path)
}

// Open launches the target with the platform opener. It returns once the
// opener process has been started; it does not wait for the opened
// application to exit.
func Open(path string) error {
	for _, scheme := range internalSchemes {
		if strings.HasPrefix(path, scheme) {
			return &ErrInternalTarget{Path: path}
		}
	}

	cmd, err := openerCommand(path)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}

	// Reap the opener in the background so it doesn't linger as a zombie.
	go cmd.Wait()
	return nil
}

// openerCommand builds the platform-specific opener invocation.
func openerCommand(path string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "windows":
		if isShellPath(path) {
			return exec.Command("explorer.exe", "shell:::"+strings.TrimPrefix(path, "::")), nil
		}
		// "start" needs an explicit empty title when the path is quoted.
		return exec.Command("cmd", "/c", "start", "", path), nil
	case "darwin":
		return exec.Command("open", path), nil
	default:
		return exec.Command("xdg-open", path), nil
	}
}

// isShellPath reports whether the target is a CLSID virtual folder.
func isShellPath(path string) bool {
	return strings.HasPrefix(path, "::{")
}

// IsExternal reports whether a target can be opened by the OS at all.
func IsExternal(path string) bool {
	for _, scheme := range internalSchemes {
		if strings.HasPrefix(path, scheme) {
			return false
		}
	}
	return true
}
