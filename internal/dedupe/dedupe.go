/*
Package dedupe collapses candidates that represent the same underlying file
or application across providers.

All rules are best-effort string heuristics: a duplicate that survives is an
acceptable cosmetic defect, so every rule errs on the side of keeping
results. Order is stable first-seen-wins unless an explicit upgrade rule
fires (app over duplicate path, appsfolder over ms-settings:).
*/
package dedupe

import (
	"strings"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// recycleBinMarkers identify file-index hits inside the recycle bin. Such
// entries are non-actionable and removed unconditionally.
var recycleBinMarkers = []string{
	"$recycle.bin",
	"::{645ff040-5081-101b-9f08-00aa002f954e}",
}

// Deduper runs the cross-source deduplication rules. The shortcut-vs-
// executable heuristic is pluggable so it can be swapped for a more precise
// matcher without touching the pipeline.
type Deduper struct {
	Shortcuts ShortcutResolver
}

// New builds a Deduper with the default vendor-directory shortcut resolver.
func New() *Deduper {
	return &Deduper{Shortcuts: VendorResolver{}}
}

// Dedupe collapses duplicates across one merged provider batch. The
// operation is idempotent: running it over its own output changes nothing.
func (d *Deduper) Dedupe(cs []candidate.Candidate) []candidate.Candidate {
	historyPaths := make(map[string]bool)
	for _, c := range cs {
		if c.Kind == candidate.KindHistoryFile {
			historyPaths[candidate.NormalizePath(c.Path)] = true
		}
	}

	out := make([]candidate.Candidate, 0, len(cs))
	byPath := make(map[string]int)
	appNames := make(map[string]bool)
	settingsIdx := -1

	for _, c := range cs {
		path := candidate.NormalizePath(c.Path)
		name := candidate.NormalizeName(c.Name)

		// History wins over the live index: it carries usage context the
		// index hit lacks.
		if c.Kind != candidate.KindHistoryFile && c.Kind != candidate.KindApp && historyPaths[path] {
			continue
		}

		// An accepted application shadows later same-named non-app results.
		if c.Kind != candidate.KindApp && appNames[name] {
			continue
		}

		// Recycle-bin residents from the file index are never actionable.
		if c.Kind == candidate.KindEverythingHit && inRecycleBin(path) {
			continue
		}

		// Only one Settings entry survives, preferring the appsfolder alias.
		if isSettingsAlias(c) {
			if settingsIdx >= 0 {
				if preferSettingsPath(path, candidate.NormalizePath(out[settingsIdx].Path)) {
					out[settingsIdx] = c
				}
				continue
			}
			settingsIdx = len(out)
		}

		// Exact path collision across providers: first in wins, except an
		// application upgrades whatever non-app claimed the path first.
		if i, ok := byPath[path]; ok {
			if c.Kind == candidate.KindApp && out[i].Kind != candidate.KindApp {
				out[i] = c
				appNames[name] = true
			}
			continue
		}

		byPath[path] = len(out)
		out = append(out, c)
		if c.Kind == candidate.KindApp {
			appNames[name] = true
		}
	}

	return d.resolveShortcuts(out)
}

// inRecycleBin reports whether a normalized path crosses a recycle-bin
// segment.
func inRecycleBin(path string) bool {
	for _, marker := range recycleBinMarkers {
		if strings.Contains(path, marker) {
			return true
		}
	}
	return false
}

// isSettingsAlias identifies the Windows Settings app across its aliases:
// the localized display names, and the ms-settings: URI. Generic
// shell:appsfolder entries only count when they also carry a settings name,
// so unrelated UWP apps are never collapsed.
func isSettingsAlias(c candidate.Candidate) bool {
	name := candidate.NormalizeName(c.Name)
	if name == "设置" || name == "settings" {
		return true
	}
	return strings.HasPrefix(candidate.NormalizePath(c.Path), "ms-settings:")
}

// preferSettingsPath reports whether the new settings path should replace
// the kept one: shell:appsfolder beats ms-settings:.
func preferSettingsPath(newPath, keptPath string) bool {
	return strings.HasPrefix(newPath, "shell:appsfolder") &&
		!strings.HasPrefix(keptPath, "shell:appsfolder")
}

// resolveShortcuts drops .lnk entries whose product is already represented
// by an .exe entry, then collapses literal same-name duplicates preferring
// the executable.
func (d *Deduper) resolveShortcuts(cs []candidate.Candidate) []candidate.Candidate {
	resolver := d.Shortcuts
	if resolver == nil {
		resolver = VendorResolver{}
	}

	var exePaths []string
	for _, c := range cs {
		if strings.HasSuffix(candidate.NormalizePath(c.Path), ".exe") {
			exePaths = append(exePaths, c.Path)
		}
	}

	kept := make([]candidate.Candidate, 0, len(cs))
	for _, c := range cs {
		path := candidate.NormalizePath(c.Path)
		if strings.HasSuffix(path, ".lnk") && matchesAnyExe(resolver, c.Path, exePaths) {
			continue
		}
		kept = append(kept, c)
	}

	return collapseSameName(kept)
}

func matchesAnyExe(resolver ShortcutResolver, lnkPath string, exePaths []string) bool {
	for _, exe := range exePaths {
		if resolver.SameProduct(lnkPath, exe) {
			return true
		}
	}
	return false
}

// collapseSameName removes a remaining .lnk when an .exe with the identical
// normalized display name survived. Other same-name pairs are left alone;
// distinct files may legitimately share a name.
func collapseSameName(cs []candidate.Candidate) []candidate.Candidate {
	exeNames := make(map[string]bool)
	for _, c := range cs {
		if strings.HasSuffix(candidate.NormalizePath(c.Path), ".exe") {
			exeNames[candidate.NormalizeName(c.Name)] = true
		}
	}

	out := make([]candidate.Candidate, 0, len(cs))
	for _, c := range cs {
		path := candidate.NormalizePath(c.Path)
		if strings.HasSuffix(path, ".lnk") && exeNames[candidate.NormalizeName(c.Name)] {
			continue
		}
		out = append(out, c)
	}
	return out
}
