package candidate

// AppInfo is the record an application provider hands to the core. Pinyin
// fields are precomputed by the provider for CJK display names and empty
// otherwise.
type AppInfo struct {
	Name           string `json:"name"`
	Path           string `json:"path"`
	Icon           string `json:"icon,omitempty"`
	Pinyin         string `json:"namePinyin,omitempty"`
	PinyinInitials string `json:"namePinyinInitials,omitempty"`
}

// FileHistoryItem is one entry of the persisted open-history store.
type FileHistoryItem struct {
	Path     string `json:"path"`
	Name     string `json:"name"`
	LastUsed int64  `json:"lastUsed"` // unix seconds
	UseCount uint32 `json:"useCount"`
	IsFolder bool   `json:"isFolder,omitempty"`
}

// EverythingResult is one hit from the external file-index service.
type EverythingResult struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	IsFolder bool   `json:"isFolder,omitempty"`
}

// MemoItem is a stored memo.
type MemoItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
}

// PluginDescriptor is the static description of a registered plugin. Plugin
// execution is out of scope for the core; only the descriptor is ranked.
type PluginDescriptor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// SearchEngineConfig describes one free-text search shortcut. URL must
// contain the "{query}" placeholder.
type SearchEngineConfig struct {
	Prefix string `json:"prefix"`
	Name   string `json:"name"`
	URL    string `json:"url"`
}
