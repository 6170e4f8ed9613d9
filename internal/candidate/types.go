/*
Package candidate defines the result model shared by all launcher providers.

Every provider (installed applications, file history, the local file index,
detectors, memos, plugins) produces Candidate values. A Candidate is a tagged
union: the Kind field selects which payload fields are meaningful, and the
per-kind constructors are the only way invalid field combinations are kept
out of the pipeline.
*/
package candidate

// Kind identifies which provider family a candidate belongs to.
type Kind int

const (
	// KindApp is an installed application (exe, lnk or UWP URI).
	KindApp Kind = iota

	// KindHistoryFile is a file from the persisted open-history store.
	KindHistoryFile

	// KindEverythingHit is a result from the external file-index service.
	KindEverythingHit

	// KindURL is a detected web address in the query text.
	KindURL

	// KindEmail is a detected e-mail address in the query text.
	KindEmail

	// KindMemo is a stored memo matched by the query.
	KindMemo

	// KindPlugin is a registered plugin descriptor.
	KindPlugin

	// KindSystemFolder is a special OS location (control panel, settings,
	// CLSID virtual folders).
	KindSystemFolder

	// KindSearchEngine is a synthetic web-search candidate produced when the
	// query matches a configured search-engine prefix.
	KindSearchEngine

	// KindAiAnswer is the synthetic "ask AI" entry.
	KindAiAnswer

	// KindJSONFormatter is the synthetic JSON-formatting entry produced when
	// the query parses as a JSON document.
	KindJSONFormatter

	// KindHistoryShortcut is the synthetic entry that opens the history view.
	KindHistoryShortcut
)

// String returns the kind name used in logs and CLI output.
func (k Kind) String() string {
	switch k {
	case KindApp:
		return "app"
	case KindHistoryFile:
		return "history"
	case KindEverythingHit:
		return "everything"
	case KindURL:
		return "url"
	case KindEmail:
		return "email"
	case KindMemo:
		return "memo"
	case KindPlugin:
		return "plugin"
	case KindSystemFolder:
		return "system-folder"
	case KindSearchEngine:
		return "search-engine"
	case KindAiAnswer:
		return "ai-answer"
	case KindJSONFormatter:
		return "json-formatter"
	case KindHistoryShortcut:
		return "history-shortcut"
	default:
		return "unknown"
	}
}

// Candidate is one unit of search result from any provider, prior to ranking.
//
// Path doubles as the deduplication key and the launch target. For non-file
// kinds it is a synthetic URI (e.g. "ai://answer", "https://..."). Path is
// unique within one provider batch but may collide across providers; the
// deduplicator is responsible for collapsing collisions.
type Candidate struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`
	Path string `json:"path"`

	// App payload.
	Pinyin         string `json:"pinyin,omitempty"`
	PinyinInitials string `json:"pinyinInitials,omitempty"`
	Icon           string `json:"icon,omitempty"`

	// HistoryFile payload. LastUsed is a unix timestamp in seconds; UseCount
	// is nil when the provider carries no count.
	UseCount *uint32 `json:"useCount,omitempty"`
	LastUsed int64   `json:"lastUsed,omitempty"`

	// Shared by HistoryFile and EverythingHit.
	IsFolder bool `json:"isFolder,omitempty"`
}

// NewApp builds an application candidate.
func NewApp(info AppInfo) Candidate {
	return Candidate{
		Kind:           KindApp,
		Name:           info.Name,
		Path:           info.Path,
		Pinyin:         info.Pinyin,
		PinyinInitials: info.PinyinInitials,
		Icon:           info.Icon,
	}
}

// NewHistoryFile builds a candidate from a persisted file-history record.
func NewHistoryFile(item FileHistoryItem) Candidate {
	count := item.UseCount
	return Candidate{
		Kind:     KindHistoryFile,
		Name:     item.Name,
		Path:     item.Path,
		UseCount: &count,
		LastUsed: item.LastUsed,
		IsFolder: item.IsFolder,
	}
}

// NewEverythingHit builds a candidate from a file-index result.
func NewEverythingHit(res EverythingResult) Candidate {
	return Candidate{
		Kind:     KindEverythingHit,
		Name:     res.Name,
		Path:     res.Path,
		IsFolder: res.IsFolder,
	}
}

// NewURL builds a detected-URL candidate. The path is the navigable address.
func NewURL(display, url string) Candidate {
	return Candidate{Kind: KindURL, Name: display, Path: url}
}

// NewEmail builds a detected-email candidate with a mailto: target.
func NewEmail(address string) Candidate {
	return Candidate{Kind: KindEmail, Name: address, Path: "mailto:" + address}
}

// NewMemo builds a memo candidate with a synthetic memo:// target.
func NewMemo(item MemoItem) Candidate {
	return Candidate{Kind: KindMemo, Name: item.Title, Path: "memo://" + item.ID}
}

// NewPlugin builds a plugin candidate with a synthetic plugin:// target.
func NewPlugin(desc PluginDescriptor) Candidate {
	return Candidate{Kind: KindPlugin, Name: desc.Name, Path: "plugin://" + desc.ID}
}

// NewSystemFolder builds a special-folder candidate (control, ms-settings:,
// CLSID paths).
func NewSystemFolder(name, path string) Candidate {
	return Candidate{Kind: KindSystemFolder, Name: name, Path: path, IsFolder: true}
}

// NewSearchEngine builds the synthetic web-search candidate for a matched
// search-engine shortcut. The path is the fully substituted search URL.
func NewSearchEngine(name, url string) Candidate {
	return Candidate{Kind: KindSearchEngine, Name: name, Path: url}
}

// NewAiAnswer builds the synthetic "ask AI" candidate.
func NewAiAnswer(query string) Candidate {
	return Candidate{Kind: KindAiAnswer, Name: query, Path: "ai://answer"}
}

// NewJSONFormatter builds the synthetic JSON-formatting candidate.
func NewJSONFormatter() Candidate {
	return Candidate{Kind: KindJSONFormatter, Name: "Format JSON", Path: "json://format"}
}

// NewHistoryShortcut builds the synthetic entry that opens the history view.
func NewHistoryShortcut() Candidate {
	return Candidate{Kind: KindHistoryShortcut, Name: "History", Path: "history://open"}
}
