package session

import (
	"context"
	"strings"

	"github.com/beaconlauncher/beacon/internal/apps"
	"github.com/beaconlauncher/beacon/internal/candidate"
	"github.com/beaconlauncher/beacon/internal/detect"
	"github.com/beaconlauncher/beacon/internal/history"
	"github.com/beaconlauncher/beacon/internal/index"
)

// indexProviderLimit bounds how many file-index hits one query pulls in.
// The sort cap downstream makes anything beyond this invisible anyway.
const indexProviderLimit = 500

// indexBatchSize is the streamed batch size requested from the file index.
const indexBatchSize = 100

// AppProvider serves installed applications from the app cache.
type AppProvider struct {
	Apps []candidate.AppInfo
}

func (p *AppProvider) Name() string { return "apps" }

func (p *AppProvider) Search(_ context.Context, query string) ([]candidate.Candidate, error) {
	matched := apps.Filter(p.Apps, query)
	out := make([]candidate.Candidate, 0, len(matched))
	for _, a := range matched {
		out = append(out, candidate.NewApp(a))
	}
	return out, nil
}

// HistoryProvider serves previously opened files from the persistent
// history store.
type HistoryProvider struct {
	Store history.Store
}

func (p *HistoryProvider) Name() string { return "history" }

func (p *HistoryProvider) Search(_ context.Context, query string) ([]candidate.Candidate, error) {
	items, err := p.Store.Search(query)
	if err != nil {
		return nil, err
	}
	out := make([]candidate.Candidate, 0, len(items))
	for _, it := range items {
		out = append(out, candidate.NewHistoryFile(it))
	}
	return out, nil
}

// IndexProvider serves hits from the local file index. It consumes the
// index through its streaming contract, folding partial batches into one
// result set until the limit is reached or the stream closes.
type IndexProvider struct {
	Indexer *index.Indexer
}

func (p *IndexProvider) Name() string { return "index" }

func (p *IndexProvider) Search(ctx context.Context, query string) ([]candidate.Candidate, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var out []candidate.Candidate
	for batch := range p.Indexer.SearchStream(ctx, query, indexBatchSize) {
		for _, h := range batch.Results {
			out = append(out, candidate.NewEverythingHit(h))
		}
		if len(out) >= indexProviderLimit {
			out = out[:indexProviderLimit]
			break
		}
	}
	return out, nil
}

// DetectProvider recognizes literal inputs: URLs, email addresses and JSON
// documents. It never errors.
type DetectProvider struct{}

func (DetectProvider) Name() string { return "detect" }

func (DetectProvider) Search(_ context.Context, query string) ([]candidate.Candidate, error) {
	return detect.Detect(query), nil
}

// MemoProvider serves stored memos by substring match on title or content.
type MemoProvider struct {
	Memos []candidate.MemoItem
}

func (p *MemoProvider) Name() string { return "memos" }

func (p *MemoProvider) Search(_ context.Context, query string) ([]candidate.Candidate, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []candidate.Candidate
	for _, m := range p.Memos {
		if q == "" ||
			strings.Contains(strings.ToLower(m.Title), q) ||
			strings.Contains(strings.ToLower(m.Content), q) {
			out = append(out, candidate.NewMemo(m))
		}
	}
	return out, nil
}

// PluginProvider serves registered plugin descriptors by name or keyword.
type PluginProvider struct {
	Plugins []candidate.PluginDescriptor
}

func (p *PluginProvider) Name() string { return "plugins" }

func (p *PluginProvider) Search(_ context.Context, query string) ([]candidate.Candidate, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []candidate.Candidate
	for _, d := range p.Plugins {
		if pluginMatches(d, q) {
			out = append(out, candidate.NewPlugin(d))
		}
	}
	return out, nil
}

func pluginMatches(d candidate.PluginDescriptor, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(d.Name), q) {
		return true
	}
	for _, kw := range d.Keywords {
		if strings.HasPrefix(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}

// SystemFolderProvider serves well-known shell locations.
type SystemFolderProvider struct {
	Folders []candidate.Candidate
}

func (p *SystemFolderProvider) Name() string { return "system-folders" }

func (p *SystemFolderProvider) Search(_ context.Context, query string) ([]candidate.Candidate, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []candidate.Candidate
	for _, f := range p.Folders {
		if q == "" ||
			strings.Contains(strings.ToLower(f.Name), q) ||
			strings.Contains(strings.ToLower(f.Pinyin), q) ||
			strings.Contains(strings.ToLower(f.PinyinInitials), q) {
			out = append(out, f)
		}
	}
	return out, nil
}

// DefaultSystemFolders returns the built-in shell locations. Special paths
// ("control", "ms-settings:" and "::{CLSID}" entries) are opened through the
// shell rather than the filesystem.
func DefaultSystemFolders() []candidate.Candidate {
	return []candidate.Candidate{
		candidate.NewSystemFolder("Control Panel", "control"),
		candidate.NewSystemFolder("Settings", "ms-settings:"),
		candidate.NewSystemFolder("Recycle Bin", "::{645FF040-5081-101B-9F08-00AA002F954E}"),
		candidate.NewSystemFolder("This PC", "::{20D04FE0-3AEA-1069-A2D8-08002B30309D}"),
		candidate.NewSystemFolder("Network", "::{F02C1A0D-BE21-4350-88B0-7367FC96EF3C}"),
	}
}
