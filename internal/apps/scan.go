package apps

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

const (
	// maxScanDepth limits directory recursion below each root.
	maxScanDepth = 3

	// maxApps caps the total number of enumerated applications.
	maxApps = 2000
)

// Scan walks the given root directories for launchable entries (.exe and
// .lnk files) up to maxScanDepth levels deep, capped at maxApps entries.
// Unreadable directories are skipped silently; enumeration is best-effort.
func Scan(roots []string) []candidate.AppInfo {
	var apps []candidate.AppInfo
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			continue
		}
		apps = scanDir(root, apps, 0)
		if len(apps) >= maxApps {
			break
		}
	}
	return dedupeByName(apps)
}

func scanDir(dir string, apps []candidate.AppInfo, depth int) []candidate.AppInfo {
	if depth > maxScanDepth || len(apps) >= maxApps {
		return apps
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return apps
	}

	for _, entry := range entries {
		if len(apps) >= maxApps {
			break
		}
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			apps = scanDir(path, apps, depth+1)
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".exe" && ext != ".lnk" {
			continue
		}

		apps = append(apps, candidate.AppInfo{
			Name: strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Path: path,
		})
	}
	return apps
}
