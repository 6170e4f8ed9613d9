package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// File names under the data directory holding user-managed provider data.
const (
	memosFileName   = "memos.json"
	pluginsFileName = "plugins.json"
)

// MemosPath returns the memo file path for a data directory.
func MemosPath(dataDir string) string {
	return filepath.Join(dataDir, memosFileName)
}

// PluginsPath returns the plugin registry path for a data directory.
func PluginsPath(dataDir string) string {
	return filepath.Join(dataDir, pluginsFileName)
}

// LoadMemos reads the stored memos. A missing file is not an error: the
// memo provider simply has nothing to serve.
func LoadMemos(dataDir string) ([]candidate.MemoItem, error) {
	var memos []candidate.MemoItem
	if err := loadJSON(MemosPath(dataDir), &memos); err != nil {
		return nil, fmt.Errorf("failed to load memos: %w", err)
	}
	return memos, nil
}

// LoadPlugins reads the registered plugin descriptors. A missing file is
// not an error.
func LoadPlugins(dataDir string) ([]candidate.PluginDescriptor, error) {
	var plugins []candidate.PluginDescriptor
	if err := loadJSON(PluginsPath(dataDir), &plugins); err != nil {
		return nil, fmt.Errorf("failed to load plugins: %w", err)
	}
	return plugins, nil
}

func loadJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, out)
}
