/*
Package rank implements the relevance-ranking engine of the launcher.

It turns one deduplicated candidate set plus usage-history signals into two
ordered display lanes: the horizontal lane of launchable items and the
vertical lane of everything else. Scoring is a pure function over a fixed
point table; ordering is a multi-key comparator with hard recency dominance.
*/
package rank

import (
	"github.com/beaconlauncher/beacon/internal/candidate"
)

// Signal is the usage information resolved for one candidate. LastUsedMS is
// a unix timestamp in milliseconds, 0 when the candidate was never opened.
// UseCount is nil when no provider carries a count for it.
type Signal struct {
	UseCount   *uint32
	LastUsedMS int64
}

// ResolveSignal derives the usage signal for a candidate from the live
// open-history map (normalized path -> unix seconds) and the candidate's own
// persisted history payload.
//
// The open-history map takes precedence for recency: it is live, while the
// persisted store may lag. The use count is taken only from the candidate's
// own payload because the live map carries no count. Absent data yields a
// zero-valued signal; there are no error cases.
func ResolveSignal(c candidate.Candidate, open map[string]int64) Signal {
	sig := Signal{UseCount: c.UseCount}

	if sec, ok := open[candidate.NormalizePath(c.Path)]; ok && sec > 0 {
		sig.LastUsedMS = sec * 1000
		return sig
	}
	if c.LastUsed > 0 {
		sig.LastUsedMS = c.LastUsed * 1000
	}
	return sig
}
