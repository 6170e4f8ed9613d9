package rank

import (
	"strings"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// Lane identifies one of the two display partitions.
type Lane int

const (
	// LaneHorizontal holds launchable items rendered as icon tiles: apps,
	// shortcuts, system folders, plugins.
	LaneHorizontal Lane = iota

	// LaneVertical holds everything else: history files, file-index hits,
	// URLs, emails, memos and the synthetic entries.
	LaneVertical
)

// LaneFor classifies a single candidate. Every candidate lands in exactly
// one lane.
func LaneFor(c candidate.Candidate) Lane {
	switch c.Kind {
	case candidate.KindPlugin:
		return LaneHorizontal
	case candidate.KindApp:
		p := strings.ToLower(c.Path)
		if strings.HasSuffix(p, ".exe") || strings.HasSuffix(p, ".lnk") ||
			strings.HasPrefix(p, "shell:appsfolder") || strings.HasPrefix(p, "ms-settings:") {
			return LaneHorizontal
		}
		return LaneVertical
	case candidate.KindSystemFolder:
		p := strings.ToLower(c.Path)
		if p == "control" || p == "ms-settings:" || strings.HasPrefix(p, "::{") {
			return LaneHorizontal
		}
		return LaneVertical
	default:
		return LaneVertical
	}
}

// Partition splits an ordered candidate sequence into the two lanes,
// preserving relative order. No candidate is lost or duplicated:
// len(horizontal)+len(vertical) always equals len(cs).
func Partition(cs []candidate.Candidate) (horizontal, vertical []candidate.Candidate) {
	horizontal = make([]candidate.Candidate, 0, len(cs))
	vertical = make([]candidate.Candidate, 0, len(cs))
	for _, c := range cs {
		if LaneFor(c) == LaneHorizontal {
			horizontal = append(horizontal, c)
		} else {
			vertical = append(vertical, c)
		}
	}
	return horizontal, vertical
}
