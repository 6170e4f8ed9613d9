package rank

import (
	"strings"
	"unicode/utf8"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// Point table for the relevance scorer. Every contribution the scorer makes
// comes from this block so tuning never touches pipeline logic and tests can
// assert the documented values directly.
const (
	// Literal name-match tiers.
	NameExact     int64 = 1000
	NamePrefix    int64 = 500
	NameSubstring int64 = 100

	// Extra boost for an exact match on a short (2-4 rune) query. Keeps a
	// precise short query ahead of long substring matches.
	ShortQueryExactBoost int64 = 300

	// Full-pinyin match tiers (application names only).
	PinyinExact     int64 = 800
	PinyinPrefix    int64 = 400
	PinyinSubstring int64 = 150

	// Pinyin-initials match tiers (application names only).
	InitialsExact     int64 = 600
	InitialsPrefix    int64 = 300
	InitialsSubstring int64 = 120

	// Bonus when the path contains the query. Halved when a literal name
	// tier already contributed, so path matching stays a tiebreaker.
	PathMatch int64 = 10

	// Application type bonuses: large when the app matched by name or
	// pinyin, small presence bonus otherwise.
	AppMatchBonus    int64 = 500
	AppPresenceBonus int64 = 50

	// Flat category bonuses.
	HistoryCategoryBonus int64 = 200
	AppCategoryBonus     int64 = 100

	// Path-depth bonus for file-index hits: base minus step per directory
	// level, floored at zero. Shallower paths win.
	EverythingDepthBase int64 = 30
	EverythingDepthStep int64 = 5

	// Use-count bonus caps.
	UseCountCapHistory int64 = 100
	UseCountCapOther   int64 = 50

	// Recency bonus tiers.
	RecencyHourBonus    int64 = 300
	RecencyDayBonus     int64 = 200
	RecencyWeekMax      int64 = 150
	RecencyMonthMax     int64 = 100
	RecencyQuarterMax   int64 = 50
)

const (
	hourMS    = int64(60 * 60 * 1000)
	dayMS     = 24 * hourMS
	weekMS    = 7 * dayMS
	monthMS   = 30 * dayMS
	quarterMS = 90 * dayMS
)

// Scale factors applied to name-match and recency contributions per kind.
const (
	urlNameScale        = 0.7 // history URLs must not over-rank files
	historyNameExtra    = 0.3 // keeps history ahead of equal-scoring index hits
	historyRecencyScale = 1.5
	urlRecencyScale     = 0.3
)

// Score computes the relevance score for one candidate. nowMS is the
// reference clock in unix milliseconds; passing it explicitly keeps the
// function pure and the output reproducible for fixed inputs.
//
// The aggregate is assembled additively from independent contributions and
// is not clamped.
func Score(c candidate.Candidate, query string, sig Signal, nowMS int64) int64 {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return scoreEmptyQuery(c, sig, nowMS)
	}

	var score int64

	// Name-match tier.
	name := candidate.NormalizeName(c.Name)
	namePoints := matchTier(name, q, NameExact, NamePrefix, NameSubstring)
	if namePoints == NameExact && shortQuery(q) {
		namePoints += ShortQueryExactBoost
	}
	if c.Kind == candidate.KindURL {
		namePoints = int64(float64(namePoints) * urlNameScale)
	}
	if c.Kind == candidate.KindHistoryFile {
		namePoints += int64(float64(namePoints) * historyNameExtra)
	}
	score += namePoints

	// Pinyin tier: applications only, and only for non-CJK queries. Pinyin
	// and literal name points are additive, not exclusive.
	var pinyinPoints int64
	if c.Kind == candidate.KindApp && !candidate.ContainsCJK(q) {
		if c.Pinyin != "" {
			pinyinPoints += matchTier(strings.ToLower(c.Pinyin), q, PinyinExact, PinyinPrefix, PinyinSubstring)
		}
		if c.PinyinInitials != "" {
			pinyinPoints += matchTier(strings.ToLower(c.PinyinInitials), q, InitialsExact, InitialsPrefix, InitialsSubstring)
		}
		score += pinyinPoints
	}

	// Path match, demoted to half when a name tier already fired.
	if strings.Contains(candidate.NormalizePath(c.Path), q) {
		if namePoints > 0 {
			score += PathMatch / 2
		} else {
			score += PathMatch
		}
	}

	// Type bonus: applications are systematically preferred over documents
	// at equal textual relevance.
	if c.Kind == candidate.KindApp {
		if namePoints > 0 || pinyinPoints > 0 {
			score += AppMatchBonus
		} else {
			score += AppPresenceBonus
		}
	}

	// Shallow file-index hits edge out deep ones.
	if c.Kind == candidate.KindEverythingHit {
		score += depthBonus(c.Path)
	}

	// Usage and recency. History files always carry their category bonus.
	if c.Kind == candidate.KindHistoryFile {
		score += HistoryCategoryBonus
	}
	score += useCountBonus(c, sig)
	score += int64(float64(recencyBonus(sig.LastUsedMS, nowMS)) * recencyScale(c.Kind))

	return score
}

// scoreEmptyQuery ranks candidates purely on usage signal and category when
// the user has typed nothing yet.
func scoreEmptyQuery(c candidate.Candidate, sig Signal, nowMS int64) int64 {
	var score int64

	score += useCountBonus(c, sig)
	score += recencyBonus(sig.LastUsedMS, nowMS)

	switch c.Kind {
	case candidate.KindHistoryFile:
		score += HistoryCategoryBonus
	case candidate.KindApp:
		score += AppCategoryBonus
	}
	return score
}

// matchTier returns the tier value for exact, prefix or substring matches of
// q in text, or 0 when none apply.
func matchTier(text, q string, exact, prefix, substr int64) int64 {
	switch {
	case text == q:
		return exact
	case strings.HasPrefix(text, q):
		return prefix
	case strings.Contains(text, q):
		return substr
	default:
		return 0
	}
}

func shortQuery(q string) bool {
	n := utf8.RuneCountInString(q)
	return n >= 2 && n <= 4
}

// useCountBonus converts a use count into a capped bonus. History files get
// a higher cap than other kinds.
func useCountBonus(c candidate.Candidate, sig Signal) int64 {
	if sig.UseCount == nil {
		return 0
	}
	count := int64(*sig.UseCount)
	limit := UseCountCapOther
	if c.Kind == candidate.KindHistoryFile {
		limit = UseCountCapHistory
	}
	if count > limit {
		return limit
	}
	return count
}

// recencyBonus maps last-use age to a tiered, decaying bonus: a fixed large
// bonus within the hour, a smaller fixed bonus within the day, then linearly
// decaying bands out to 90 days, then nothing.
func recencyBonus(lastUsedMS, nowMS int64) int64 {
	if lastUsedMS <= 0 {
		return 0
	}
	age := nowMS - lastUsedMS
	if age < 0 {
		age = 0
	}
	switch {
	case age <= hourMS:
		return RecencyHourBonus
	case age <= dayMS:
		return RecencyDayBonus
	case age <= weekMS:
		return RecencyWeekMax * (weekMS - age) / weekMS
	case age <= monthMS:
		return RecencyMonthMax * (monthMS - age) / monthMS
	case age <= quarterMS:
		return RecencyQuarterMax * (quarterMS - age) / quarterMS
	default:
		return 0
	}
}

func recencyScale(k candidate.Kind) float64 {
	switch k {
	case candidate.KindHistoryFile:
		return historyRecencyScale
	case candidate.KindURL:
		return urlRecencyScale
	default:
		return 1.0
	}
}

// depthBonus rewards shallow paths: base minus step per directory separator,
// floored at zero.
func depthBonus(path string) int64 {
	depth := int64(strings.Count(candidate.NormalizePath(path), "/"))
	bonus := EverythingDepthBase - EverythingDepthStep*depth
	if bonus < 0 {
		return 0
	}
	return bonus
}
