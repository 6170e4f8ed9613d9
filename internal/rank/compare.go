package rank

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// Scored pairs a candidate with everything the comparator needs: the
// computed relevance score and the resolved usage signal.
type Scored struct {
	Candidate candidate.Candidate
	Score     int64
	Signal    Signal
}

// Comparator implements the multi-key ordering applied to ranked results.
// The same instance is used for the merged set and for the re-sort of the
// horizontal lane.
type Comparator struct {
	collator *collate.Collator
}

// NewComparator builds a comparator with a locale-aware collator for the
// final name tiebreak.
func NewComparator() *Comparator {
	return &Comparator{
		collator: collate.New(language.Und, collate.Loose),
	}
}

// Less reports whether a sorts before b.
//
// Key order: recency dominance, score, type priority, use count, name.
// Recency is a hard ordering key: when both candidates were used it decides
// alone, regardless of score.
func (c *Comparator) Less(a, b Scored) bool {
	ar, br := a.Signal.LastUsedMS, b.Signal.LastUsedMS
	if ar > 0 && br > 0 && ar != br {
		return ar > br
	}
	if (ar > 0) != (br > 0) {
		return ar > 0
	}

	if a.Score != b.Score {
		return a.Score > b.Score
	}

	ap, bp := typePriority(a.Candidate), typePriority(b.Candidate)
	if ap != bp {
		return ap > bp
	}
	if a.Candidate.Kind == candidate.KindEverythingHit && b.Candidate.Kind == candidate.KindEverythingHit {
		al := isLnk(a.Candidate.Path)
		bl := isLnk(b.Candidate.Path)
		if al != bl {
			return al
		}
	}

	// Undefined counts sort after defined ones.
	au, bu := a.Signal.UseCount, b.Signal.UseCount
	switch {
	case au != nil && bu != nil && *au != *bu:
		return *au > *bu
	case (au != nil) != (bu != nil):
		return au != nil
	}

	return c.collator.CompareString(a.Candidate.Name, b.Candidate.Name) < 0
}

func typePriority(c candidate.Candidate) int {
	switch c.Kind {
	case candidate.KindApp:
		return 3
	case candidate.KindHistoryFile:
		return 2
	case candidate.KindEverythingHit:
		return 1
	default:
		return 0
	}
}

func isLnk(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".lnk")
}
