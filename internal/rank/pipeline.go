package rank

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// DefaultSortCap bounds how many candidates are fully sorted in one ranking
// pass. Beyond the cap the remainder is appended in arrival order.
const DefaultSortCap = 1000

// Pipeline orchestrates scoring, ordering and partitioning for one query
// cycle. It owns the candidate list only for the duration of the call; the
// returned lanes belong to the caller.
type Pipeline struct {
	// Engines are the configured search-engine shortcuts checked before any
	// ranking happens.
	Engines []candidate.SearchEngineConfig

	// SortCap limits the fully sorted slice. Zero means DefaultSortCap.
	SortCap int

	cmp *Comparator
	now func() time.Time
}

// NewPipeline builds a ranking pipeline with the given search-engine
// shortcuts.
func NewPipeline(engines []candidate.SearchEngineConfig) *Pipeline {
	return &Pipeline{
		Engines: engines,
		SortCap: DefaultSortCap,
		cmp:     NewComparator(),
		now:     time.Now,
	}
}

// Rank produces the two ordered display lanes for a candidate set.
//
// When the query starts with a configured search-engine prefix the whole
// ranking is bypassed and a single synthetic search candidate is returned;
// the prefix is a hard override rather than a scoring bonus.
func (p *Pipeline) Rank(cs []candidate.Candidate, query string, open map[string]int64) (horizontal, vertical []candidate.Candidate) {
	if sc, ok := p.matchEngine(query); ok {
		return Partition([]candidate.Candidate{sc})
	}

	nowMS := p.now().UnixMilli()
	scored := make([]Scored, len(cs))
	for i, c := range cs {
		sig := ResolveSignal(c, open)
		scored[i] = Scored{
			Candidate: c,
			Score:     Score(c, query, sig, nowMS),
			Signal:    sig,
		}
	}

	p.sortCapped(scored)

	var horiz, vert []Scored
	for _, s := range scored {
		if LaneFor(s.Candidate) == LaneHorizontal {
			horiz = append(horiz, s)
		} else {
			vert = append(vert, s)
		}
	}

	// The horizontal lane is sorted again with the identical comparator
	// after the split.
	p.sortCapped(horiz)

	return unwrap(horiz), unwrap(vert)
}

// RankAt is Rank with an explicit reference time, for reproducible results.
func (p *Pipeline) RankAt(cs []candidate.Candidate, query string, open map[string]int64, at time.Time) (horizontal, vertical []candidate.Candidate) {
	saved := p.now
	p.now = func() time.Time { return at }
	defer func() { p.now = saved }()
	return p.Rank(cs, query, open)
}

// matchEngine checks the query against the configured search-engine
// prefixes and, on a hit, builds the substituted search candidate.
func (p *Pipeline) matchEngine(query string) (candidate.Candidate, bool) {
	for _, e := range p.Engines {
		if e.Prefix == "" || !strings.HasPrefix(query, e.Prefix) {
			continue
		}
		terms := strings.TrimSpace(query[len(e.Prefix):])
		if terms == "" {
			continue
		}
		target := strings.ReplaceAll(e.URL, "{query}", url.QueryEscape(terms))
		return candidate.NewSearchEngine(e.Name, target), true
	}
	return candidate.Candidate{}, false
}

// sortCapped sorts at most SortCap leading elements with the pipeline
// comparator and leaves the remainder in its pre-sort relative order.
func (p *Pipeline) sortCapped(scored []Scored) {
	limit := p.SortCap
	if limit <= 0 {
		limit = DefaultSortCap
	}
	head := scored
	if len(head) > limit {
		head = head[:limit]
	}
	sort.SliceStable(head, func(i, j int) bool {
		return p.cmp.Less(head[i], head[j])
	})
}

func unwrap(scored []Scored) []candidate.Candidate {
	out := make([]candidate.Candidate, len(scored))
	for i, s := range scored {
		out[i] = s.Candidate
	}
	return out
}
