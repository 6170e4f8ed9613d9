package cli

import (
	"log"

	"github.com/beaconlauncher/beacon/internal/apps"
	"github.com/beaconlauncher/beacon/internal/history"
	"github.com/beaconlauncher/beacon/internal/index"
	"github.com/beaconlauncher/beacon/internal/session"
)

// buildProviders assembles the full provider set for a query session.
// Optional sources (app cache, memos, plugins, file index) degrade to a
// warning when they cannot be loaded. The caller must invoke the returned
// cleanup function when the providers are no longer needed.
func buildProviders(store history.Store, dataDir string) ([]session.Provider, func()) {
	providers := []session.Provider{
		session.DetectProvider{},
		&session.HistoryProvider{Store: store},
		&session.SystemFolderProvider{Folders: session.DefaultSystemFolders()},
	}

	cached, err := apps.LoadCache(dataDir)
	if err != nil {
		log.Printf("Warning: app cache unavailable: %v", err)
	} else {
		providers = append(providers, &session.AppProvider{Apps: cached})
	}

	memos, err := session.LoadMemos(dataDir)
	if err != nil {
		log.Printf("Warning: memos unavailable: %v", err)
	} else if len(memos) > 0 {
		providers = append(providers, &session.MemoProvider{Memos: memos})
	}

	plugins, err := session.LoadPlugins(dataDir)
	if err != nil {
		log.Printf("Warning: plugins unavailable: %v", err)
	} else if len(plugins) > 0 {
		providers = append(providers, &session.PluginProvider{Plugins: plugins})
	}

	cleanup := func() {}
	if idx, err := index.NewIndexerWithPath(index.DefaultPath(dataDir)); err != nil {
		log.Printf("Warning: file index unavailable: %v", err)
	} else {
		providers = append(providers, &session.IndexProvider{Indexer: idx})
		cleanup = func() { idx.Close() }
	}

	return providers, cleanup
}
