package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// fakeProvider returns a fixed result set, optionally after a delay. When
// onlyQuery is set, other queries yield nothing.
type fakeProvider struct {
	name      string
	results   []candidate.Candidate
	delay     time.Duration
	onlyQuery string
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Search(ctx context.Context, query string) ([]candidate.Candidate, error) {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.onlyQuery != "" && query != p.onlyQuery {
		return nil, nil
	}
	return p.results, nil
}

// collector records session updates.
type collector struct {
	mu      sync.Mutex
	updates []Update
}

func (c *collector) emit(u Update) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updates = append(c.updates, u)
}

func (c *collector) snapshot() []Update {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Update, len(c.updates))
	copy(out, c.updates)
	return out
}

func newTestSession(t *testing.T, col *collector, providers ...Provider) *Session {
	t.Helper()
	s, err := New(Options{
		Providers:  providers,
		Emit:       col.emit,
		DebounceMS: 1,
	})
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestSession_DeliversProviderResults(t *testing.T) {
	col := &collector{}
	s := newTestSession(t, col,
		&fakeProvider{name: "apps", results: []candidate.Candidate{
			candidate.NewApp(candidate.AppInfo{Name: "Chrome", Path: "C:/a/chrome.exe"}),
		}},
		&fakeProvider{name: "files", results: []candidate.Candidate{
			candidate.NewEverythingHit(candidate.EverythingResult{Name: "chrome_notes.txt", Path: "D:/chrome_notes.txt"}),
		}},
	)

	s.Query("chr")

	require.Eventually(t, func() bool {
		h, v := s.Lanes()
		return len(h) == 1 && len(v) == 1
	}, time.Second, 5*time.Millisecond, "results never arrived")

	h, v := s.Lanes()
	require.Equal(t, "Chrome", h[0].Name)
	require.Equal(t, "chrome_notes.txt", v[0].Name)
}

func TestSession_StaleGenerationNeverWins(t *testing.T) {
	col := &collector{}

	slow := &fakeProvider{
		name:      "slow",
		delay:     150 * time.Millisecond,
		onlyQuery: "old query",
		results: []candidate.Candidate{
			candidate.NewEverythingHit(candidate.EverythingResult{Name: "old-result", Path: "D:/old"}),
		},
	}
	fast := &fakeProvider{
		name: "fast",
		results: []candidate.Candidate{
			candidate.NewEverythingHit(candidate.EverythingResult{Name: "new-result", Path: "D:/new"}),
		},
	}
	s := newTestSession(t, col, slow, fast)

	s.Query("old query")
	time.Sleep(30 * time.Millisecond) // let the first cycle start, slow still pending
	s.Query("new query")

	require.Eventually(t, func() bool {
		_, v := s.Lanes()
		return len(v) > 0
	}, time.Second, 5*time.Millisecond)

	// Give the slow provider time to fire for the stale generation.
	time.Sleep(250 * time.Millisecond)

	_, v := s.Lanes()
	for _, c := range v {
		require.NotEqual(t, "old-result", c.Name, "stale provider result leaked into current lanes")
	}

	// Emitted updates for the final generation must never carry the stale name.
	finalGen := s.Generation()
	for _, u := range col.snapshot() {
		if u.Generation != finalGen {
			continue
		}
		for _, c := range u.Vertical {
			require.NotEqual(t, "old-result", c.Name)
		}
	}
}

func TestSession_EmptyQueryClearsLanes(t *testing.T) {
	col := &collector{}
	s := newTestSession(t, col, &fakeProvider{name: "p", results: []candidate.Candidate{
		candidate.NewEverythingHit(candidate.EverythingResult{Name: "f", Path: "D:/f"}),
	}})

	s.Query("f")
	require.Eventually(t, func() bool {
		_, v := s.Lanes()
		return len(v) == 1
	}, time.Second, 5*time.Millisecond)

	gen := s.Generation()
	s.Query("   ")

	h, v := s.Lanes()
	require.Empty(t, h)
	require.Empty(t, v)
	require.Greater(t, s.Generation(), gen, "clearing the query must advance the generation")
}

func TestSession_ClearCancelsPendingDebouncedRun(t *testing.T) {
	col := &collector{}
	s, err := New(Options{
		Providers: []Provider{&fakeProvider{name: "p", results: []candidate.Candidate{
			candidate.NewEverythingHit(candidate.EverythingResult{Name: "f", Path: "D:/f"}),
		}}},
		Emit:       col.emit,
		DebounceMS: 50,
	})
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	t.Cleanup(s.Close)

	// Clear before the debounced run for "f" fires: the pending callback
	// must be displaced, not run against the erased query.
	s.Query("f")
	time.Sleep(10 * time.Millisecond)
	s.Query("")

	gen := s.Generation()
	time.Sleep(300 * time.Millisecond)

	h, v := s.Lanes()
	require.Empty(t, h, "cleared query must leave the horizontal lane empty")
	require.Empty(t, v, "cleared query must leave the vertical lane empty")
	require.Equal(t, gen, s.Generation(), "no search cycle may start after the clear")
}

func TestSession_ProviderErrorDegradesSilently(t *testing.T) {
	col := &collector{}
	failing := &failingProvider{}
	ok := &fakeProvider{name: "ok", results: []candidate.Candidate{
		candidate.NewEverythingHit(candidate.EverythingResult{Name: "f", Path: "D:/f"}),
	}}
	s := newTestSession(t, col, failing, ok)

	s.Query("f")

	require.Eventually(t, func() bool {
		_, v := s.Lanes()
		return len(v) == 1
	}, time.Second, 5*time.Millisecond, "healthy provider results must survive a failing sibling")
}

type failingProvider struct{}

func (failingProvider) Name() string { return "failing" }

func (failingProvider) Search(context.Context, string) ([]candidate.Candidate, error) {
	return nil, context.DeadlineExceeded
}

func TestSession_DedupAcrossProviders(t *testing.T) {
	col := &collector{}
	s := newTestSession(t, col,
		&fakeProvider{name: "history", results: []candidate.Candidate{
			candidate.NewHistoryFile(candidate.FileHistoryItem{Name: "doc.txt", Path: "c:/files/doc.txt"}),
		}},
		&fakeProvider{name: "index", results: []candidate.Candidate{
			candidate.NewEverythingHit(candidate.EverythingResult{Name: "doc.txt", Path: `C:\Files\Doc.txt`}),
		}},
	)

	s.Query("doc")

	require.Eventually(t, func() bool {
		_, v := s.Lanes()
		return len(v) > 0
	}, time.Second, 5*time.Millisecond)

	// Wait for both providers to have been folded in.
	time.Sleep(50 * time.Millisecond)

	_, v := s.Lanes()
	require.Len(t, v, 1, "case/slash path variants must collapse to one entry")
	require.Equal(t, candidate.KindHistoryFile, v[0].Kind)
}

func TestSession_LaunchFeedsOpenHistory(t *testing.T) {
	col := &collector{}
	s := newTestSession(t, col)

	s.Launch(`C:\Files\Doc.txt`)

	snap := s.open.Snapshot()
	require.Contains(t, snap, "c:/files/doc.txt")
}
