/*
Package apps implements the installed-application provider.

Application enumeration is slow (it walks start-menu style directories), so
the provider works from a JSON cache file under the data directory and only
rescans on demand. Pinyin fields are whatever the scanner that produced the
cache attached; the provider itself does no transliteration.
*/
package apps

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// cacheFileName is the cache file under the data directory.
const cacheFileName = "app_cache.json"

// CachePath returns the cache file path for a data directory.
func CachePath(dataDir string) string {
	return filepath.Join(dataDir, cacheFileName)
}

// LoadCache reads the cached application list. A missing cache file is not
// an error: enumeration simply starts fresh.
func LoadCache(dataDir string) ([]candidate.AppInfo, error) {
	data, err := os.ReadFile(CachePath(dataDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []candidate.AppInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read app cache: %w", err)
	}

	var apps []candidate.AppInfo
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("failed to parse app cache: %w", err)
	}
	return apps, nil
}

// SaveCache writes the application list to the cache file, creating the
// data directory if needed.
func SaveCache(dataDir string, apps []candidate.AppInfo) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create app data directory: %w", err)
	}

	data, err := json.MarshalIndent(apps, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize app cache: %w", err)
	}

	if err := os.WriteFile(CachePath(dataDir), data, 0644); err != nil {
		return fmt.Errorf("failed to write app cache: %w", err)
	}
	return nil
}

// Filter returns the applications whose name, pinyin or path contains the
// query. An empty query returns everything. This is only the provider-local
// pre-filter; relevance ordering is the ranking core's job.
func Filter(apps []candidate.AppInfo, query string) []candidate.AppInfo {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return apps
	}

	out := make([]candidate.AppInfo, 0, len(apps))
	for _, app := range apps {
		if strings.Contains(strings.ToLower(app.Name), q) ||
			(app.Pinyin != "" && strings.Contains(strings.ToLower(app.Pinyin), q)) ||
			(app.PinyinInitials != "" && strings.Contains(strings.ToLower(app.PinyinInitials), q)) ||
			strings.Contains(candidate.NormalizePath(app.Path), q) {
			out = append(out, app)
		}
	}
	return out
}

// dedupeByName sorts applications by name and drops adjacent duplicates,
// mirroring how the enumerator treats two shortcuts to the same product.
func dedupeByName(apps []candidate.AppInfo) []candidate.AppInfo {
	sort.Slice(apps, func(i, j int) bool { return apps[i].Name < apps[j].Name })

	out := apps[:0]
	var last string
	for _, app := range apps {
		if app.Name == last {
			continue
		}
		out = append(out, app)
		last = app.Name
	}
	return out
}
