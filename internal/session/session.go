/*
Package session orchestrates one launcher window's query lifecycle.

Keystrokes are debounced, each effective query change bumps a generation
token, providers are fanned out on a shared worker pool, and every
asynchronous resumption point (provider arrival, aggregation, delivery
tick) re-checks the generation before touching shared state. Results for an
older query can therefore never overwrite results for a newer one, no
matter how provider latencies interleave.
*/
package session

import (
	"context"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/beaconlauncher/beacon/internal/candidate"
	"github.com/beaconlauncher/beacon/internal/dedupe"
	"github.com/beaconlauncher/beacon/internal/deliver"
	"github.com/beaconlauncher/beacon/internal/history"
	"github.com/beaconlauncher/beacon/internal/rank"
)

// Provider is one source of candidates. Implementations must honor the
// context: a cancelled search should return promptly, and partial results
// are preferred over blocking.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]candidate.Candidate, error)
}

// Update is one display refresh handed to the UI layer. The lanes are
// owned by the receiver once emitted; the session never mutates them
// afterwards.
type Update struct {
	Query      string
	Horizontal []candidate.Candidate
	Vertical   []candidate.Candidate
	Progress   deliver.Progress
	Generation uint64
}

// Options configures a Session.
type Options struct {
	Providers  []Provider
	Engines    []candidate.SearchEngineConfig
	Open       *history.OpenHistory
	Store      history.Store // optional: search analytics + launch records
	Emit       func(Update)
	DebounceMS int
	PoolSize   int
}

// Session drives queries from keystroke to delivered lanes.
type Session struct {
	providers []Provider
	pipeline  *rank.Pipeline
	deduper   *dedupe.Deduper
	open      *history.OpenHistory
	store     history.Store
	emit      func(Update)
	sched     *deliver.Scheduler
	pool      *ants.Pool
	debounce  func(func())

	generation atomic.Uint64

	mu         sync.Mutex
	cancel     context.CancelFunc
	query      string
	rawInput   string
	horizontal []candidate.Candidate
	vertical   []candidate.Candidate
}

// New creates a session. PoolSize defaults to 4 workers; DebounceMS
// defaults to 60.
func New(opts Options) (*Session, error) {
	poolSize := opts.PoolSize
	if poolSize <= 0 {
		poolSize = 4
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	debounceMS := opts.DebounceMS
	if debounceMS <= 0 {
		debounceMS = 60
	}

	open := opts.Open
	if open == nil {
		open = history.NewOpenHistory()
	}

	s := &Session{
		providers: opts.Providers,
		pipeline:  rank.NewPipeline(opts.Engines),
		deduper:   dedupe.New(),
		open:      open,
		store:     opts.Store,
		emit:      opts.Emit,
		pool:      pool,
		debounce:  debounce.New(time.Duration(debounceMS) * time.Millisecond),
	}
	s.sched = deliver.NewScheduler(s.onProgress)
	return s, nil
}

// Query feeds one keystroke's worth of input. Empty input cancels any
// in-flight search, displaces any pending debounced run and clears the
// lanes immediately; everything else is debounced before a search cycle
// starts.
func (s *Session) Query(input string) {
	if strings.TrimSpace(input) == "" {
		s.setRawInput("")
		s.generation.Add(1)
		s.cancelInflight()
		s.setLanes(s.generation.Load(), "", nil, nil)
		s.sched.Cancel()
		// A callback scheduled by an earlier keystroke may still be pending
		// inside the debouncer; replace it so it cannot fire after the clear.
		s.debounce(func() {})
		return
	}
	s.setRawInput(input)
	s.debounce(func() { s.run(input) })
}

func (s *Session) setRawInput(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawInput = input
}

// run starts one search cycle. It is the only place the generation is
// advanced for a real query.
func (s *Session) run(query string) {
	s.mu.Lock()
	stale := s.rawInput != query
	s.mu.Unlock()
	if stale {
		return
	}

	gen := s.generation.Add(1)

	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.query = query
	s.mu.Unlock()

	results := make(chan []candidate.Candidate, len(s.providers))
	var wg sync.WaitGroup

	for _, p := range s.providers {
		p := p
		wg.Add(1)
		task := func() {
			defer wg.Done()
			cs, err := p.Search(ctx, query)
			if err != nil {
				log.Printf("Warning: provider %s failed: %v", p.Name(), err)
				return
			}
			select {
			case results <- cs:
			case <-ctx.Done():
			}
		}
		if err := s.pool.Submit(task); err != nil {
			// Pool saturated or released: run inline on a fresh goroutine
			// rather than dropping the provider.
			go task()
		}
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go s.aggregate(ctx, gen, query, results)
}

// aggregate folds provider batches into the displayed lanes as they
// arrive. Stale generations drop out at every step.
func (s *Session) aggregate(ctx context.Context, gen uint64, query string, results <-chan []candidate.Candidate) {
	var all []candidate.Candidate
	total := 0

	for cs := range results {
		if s.generation.Load() != gen || ctx.Err() != nil {
			return
		}
		if len(cs) == 0 {
			continue
		}
		all = append(all, cs...)
		total = s.publish(gen, query, all)
	}

	if s.generation.Load() != gen {
		return
	}
	if len(all) == 0 {
		total = s.publish(gen, query, nil)
	}
	if s.store != nil {
		if err := s.store.RecordSearch(uuid.NewString(), query, total); err != nil {
			log.Printf("Warning: failed to record search: %v", err)
		}
	}
}

// publish dedupes, ranks and hands the lanes to delivery. Returns the
// total candidate count after dedup.
func (s *Session) publish(gen uint64, query string, all []candidate.Candidate) int {
	deduped := s.deduper.Dedupe(all)
	horizontal, vertical := s.pipeline.Rank(deduped, query, s.open.Snapshot())

	if !s.setLanes(gen, query, horizontal, vertical) {
		return 0
	}
	s.sched.Submit(len(horizontal) + len(vertical))
	return len(horizontal) + len(vertical)
}

// setLanes installs new lane state iff gen is still current.
func (s *Session) setLanes(gen uint64, query string, horizontal, vertical []candidate.Candidate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation.Load() != gen {
		return false
	}
	s.query = query
	s.horizontal = horizontal
	s.vertical = vertical
	return true
}

// onProgress relays delivery progress to the UI together with the current
// lanes.
func (s *Session) onProgress(p deliver.Progress) {
	if s.emit == nil {
		return
	}

	s.mu.Lock()
	u := Update{
		Query:      s.query,
		Horizontal: s.horizontal,
		Vertical:   s.vertical,
		Progress:   p,
		Generation: s.generation.Load(),
	}
	s.mu.Unlock()
	s.emit(u)
}

// Launch records a launched target in both history stores. The UI calls
// this when the user activates a result.
func (s *Session) Launch(path string) {
	now := time.Now().Unix()
	s.open.Touch(path, now)
	if s.store != nil {
		if err := s.store.RecordOpen(path); err != nil {
			log.Printf("Warning: failed to record open: %v", err)
		}
	}
}

// Lanes returns the current lane state.
func (s *Session) Lanes() (horizontal, vertical []candidate.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.horizontal, s.vertical
}

// Generation returns the current query generation token.
func (s *Session) Generation() uint64 {
	return s.generation.Load()
}

func (s *Session) cancelInflight() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.horizontal = nil
	s.vertical = nil
	s.query = ""
}

// Close shuts the session down: cancels in-flight work and releases the
// worker pool.
func (s *Session) Close() {
	s.setRawInput("")
	s.generation.Add(1)
	s.cancelInflight()
	s.sched.Cancel()
	s.debounce(func() {})
	s.pool.Release()
}
