package version

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	RepoOwner = "beaconlauncher"
	RepoName  = "beacon"
	UpdateURL = "https://api.github.com/repos/" + RepoOwner + "/" + RepoName + "/releases/latest"

	// checkInterval is how long a release check result is cached. The
	// launcher only notifies about new versions; installing them is the
	// user's own step.
	checkInterval = 24 * time.Hour
)

var checkMu sync.Mutex

// githubRelease is the subset of the GitHub release API response we read.
type githubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// UpdateCache stores the state of the last release check.
type UpdateCache struct {
	LastUpdateCheck  time.Time `json:"lastUpdateCheck"`
	LastKnownVersion string    `json:"lastKnownVersion"`
}

// CheckUpdate queries the latest release and returns its version when it
// differs from the running one, or "" when up to date. Results are cached
// on disk so at most one network call is made per day.
func CheckUpdate(ctx context.Context) (string, error) {
	checkMu.Lock()
	defer checkMu.Unlock()

	cache, err := loadUpdateCache()
	if err == nil && time.Since(cache.LastUpdateCheck) < checkInterval {
		if cache.LastKnownVersion != "" && cache.LastKnownVersion != Version {
			return cache.LastKnownVersion, nil
		}
		return "", nil
	}
	if cache == nil {
		cache = &UpdateCache{}
	}

	latest, err := fetchLatestVersion(ctx)
	if err != nil {
		return "", err
	}

	cache.LastUpdateCheck = time.Now()
	cache.LastKnownVersion = latest
	if err := saveUpdateCache(cache); err != nil {
		log.Printf("Warning: failed to save update cache: %v", err)
	}

	if latest != Version {
		return latest, nil
	}
	return "", nil
}

// fetchLatestVersion asks the GitHub API for the newest release tag.
func fetchLatestVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", UpdateURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to check for updates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var release githubRelease
	if err := json.Unmarshal(body, &release); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return strings.TrimPrefix(release.TagName, "v"), nil
}

// getCachePath returns the path to the update cache file.
func getCachePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".beacon-update-cache.json"), nil
}

// loadUpdateCache loads the update cache from disk. A missing or corrupt
// file yields an empty cache.
func loadUpdateCache() (*UpdateCache, error) {
	cachePath, err := getCachePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cachePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &UpdateCache{}, nil
		}
		return nil, err
	}

	var cache UpdateCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return &UpdateCache{}, nil
	}
	return &cache, nil
}

// saveUpdateCache saves the update cache to disk.
func saveUpdateCache(cache *UpdateCache) error {
	cachePath, err := getCachePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(cachePath, data, 0644)
}
