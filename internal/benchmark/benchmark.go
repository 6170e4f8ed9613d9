/*
Package benchmark measures end-to-end ranking latency.

It generates synthetic candidate sets of increasing size, runs them through
the full dedupe + rank path repeatedly, and reports per-stage averages. The
numbers answer the question that matters for a launcher: does a keystroke
still feel instant at 5000 candidates?
*/
package benchmark

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/beaconlauncher/beacon/internal/candidate"
	"github.com/beaconlauncher/beacon/internal/dedupe"
	"github.com/beaconlauncher/beacon/internal/rank"
)

// DefaultRuns is how many timed iterations each candidate-set size gets.
// Averaging over 20 runs is enough to smooth scheduler noise without
// making the bench command feel slow.
const DefaultRuns = 20

// DefaultSizes are the candidate-set sizes measured by default. 5000 is
// well past the sort cap, so the largest size also exercises the capped
// sorting path.
var DefaultSizes = []int{100, 1000, 5000}

// benchSeed fixes the synthetic data so runs are comparable across
// invocations and machines.
const benchSeed = 42

// queries rotated through during timing, covering the main match shapes:
// prefix, substring, exact and no-match.
var queries = []string{"re", "doc", "report", "zzzz"}

// SizeResult holds the averaged timings for one candidate-set size.
type SizeResult struct {
	CandidateCount int           `json:"candidateCount"`
	Runs           int           `json:"runs"`
	Dedupe         time.Duration `json:"dedupe"`
	Rank           time.Duration `json:"rank"`
	Total          time.Duration `json:"total"`
}

// Result contains the timings for every measured size.
type Result struct {
	Sizes []SizeResult `json:"sizes"`
}

// GenerateCandidates builds a deterministic synthetic candidate set with a
// realistic kind mix: mostly file-index hits, then history files, then
// apps, with a few memos sprinkled in. Names reuse a small word pool so
// queries hit a meaningful fraction of the set.
func GenerateCandidates(n int) []candidate.Candidate {
	rng := rand.New(rand.NewSource(benchSeed))
	words := []string{"report", "notes", "budget", "draft", "photo", "recipe", "invoice", "readme"}
	now := time.Now().Unix()

	out := make([]candidate.Candidate, 0, n)
	for i := 0; i < n; i++ {
		word := words[rng.Intn(len(words))]
		name := fmt.Sprintf("%s-%d.txt", word, i)
		path := fmt.Sprintf("C:/Users/bench/Documents/%s", name)

		switch {
		case i%10 < 5:
			out = append(out, candidate.NewEverythingHit(candidate.EverythingResult{
				Name: name,
				Path: path,
			}))
		case i%10 < 8:
			out = append(out, candidate.NewHistoryFile(candidate.FileHistoryItem{
				Name:     name,
				Path:     path,
				LastUsed: now - int64(rng.Intn(90*24*3600)),
				UseCount: uint32(rng.Intn(120)),
			}))
		case i%10 < 9:
			out = append(out, candidate.NewApp(candidate.AppInfo{
				Name: fmt.Sprintf("%s App %d", word, i),
				Path: fmt.Sprintf("C:/Program Files/%s/app%d.exe", word, i),
			}))
		default:
			out = append(out, candidate.NewMemo(candidate.MemoItem{
				ID:    fmt.Sprintf("memo-%d", i),
				Title: fmt.Sprintf("%s memo %d", word, i),
			}))
		}
	}
	return out
}

// Run measures dedupe and rank latency for each size. A warm-up iteration
// per size is discarded before timing starts.
func Run(sizes []int, runs int) *Result {
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	if runs <= 0 {
		runs = DefaultRuns
	}

	deduper := dedupe.New()
	pipeline := rank.NewPipeline(nil)
	open := map[string]int64{}

	result := &Result{}
	for _, size := range sizes {
		cs := GenerateCandidates(size)

		// Warm-up: first run pays allocator and cache costs.
		deduped := deduper.Dedupe(cs)
		pipeline.Rank(deduped, queries[0], open)

		var dedupeTotal, rankTotal time.Duration
		for i := 0; i < runs; i++ {
			query := queries[i%len(queries)]

			start := time.Now()
			deduped := deduper.Dedupe(cs)
			dedupeTotal += time.Since(start)

			start = time.Now()
			pipeline.Rank(deduped, query, open)
			rankTotal += time.Since(start)
		}

		avgDedupe := dedupeTotal / time.Duration(runs)
		avgRank := rankTotal / time.Duration(runs)
		result.Sizes = append(result.Sizes, SizeResult{
			CandidateCount: size,
			Runs:           runs,
			Dedupe:         avgDedupe,
			Rank:           avgRank,
			Total:          avgDedupe + avgRank,
		})
	}
	return result
}

// FormatResult formats the benchmark result for display.
func FormatResult(r *Result) string {
	var sb strings.Builder

	sb.WriteString("RANKING LATENCY BENCHMARK\n")
	sb.WriteString(fmt.Sprintf("%-12s %-6s %-12s %-12s %-12s\n",
		"candidates", "runs", "dedupe", "rank", "total"))
	for _, s := range r.Sizes {
		sb.WriteString(fmt.Sprintf("%-12d %-6d %-12s %-12s %-12s\n",
			s.CandidateCount, s.Runs,
			s.Dedupe.Round(time.Microsecond),
			s.Rank.Round(time.Microsecond),
			s.Total.Round(time.Microsecond)))
	}
	return sb.String()
}
