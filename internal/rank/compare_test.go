package rank

import (
	"testing"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

func TestComparator_RecencyDominance(t *testing.T) {
	cmp := NewComparator()

	// Lower score but used more recently must still win.
	a := Scored{
		Candidate: candidate.NewMemo(candidate.MemoItem{ID: "a", Title: "a"}),
		Score:     10,
		Signal:    Signal{LastUsedMS: 2000},
	}
	b := Scored{
		Candidate: candidate.NewMemo(candidate.MemoItem{ID: "b", Title: "b"}),
		Score:     9999,
		Signal:    Signal{LastUsedMS: 1000},
	}
	if !cmp.Less(a, b) {
		t.Error("expected more recent candidate to sort first despite lower score")
	}
	if cmp.Less(b, a) {
		t.Error("expected older candidate to sort after")
	}
}

func TestComparator_UsedBeatsUnused(t *testing.T) {
	cmp := NewComparator()

	used := Scored{
		Candidate: candidate.NewMemo(candidate.MemoItem{ID: "u", Title: "u"}),
		Score:     0,
		Signal:    Signal{LastUsedMS: 1},
	}
	unused := Scored{
		Candidate: candidate.NewMemo(candidate.MemoItem{ID: "n", Title: "n"}),
		Score:     5000,
	}
	if !cmp.Less(used, unused) {
		t.Error("expected any used candidate to sort before an unused one")
	}
}

func TestComparator_ScoreThenTypePriority(t *testing.T) {
	cmp := NewComparator()

	app := Scored{Candidate: candidate.NewApp(candidate.AppInfo{Name: "same", Path: "C:/a.exe"}), Score: 100}
	hist := Scored{Candidate: candidate.NewHistoryFile(candidate.FileHistoryItem{Name: "same", Path: "D:/h"}), Score: 100}
	every := Scored{Candidate: candidate.NewEverythingHit(candidate.EverythingResult{Name: "same", Path: "D:/e"}), Score: 100}

	if !cmp.Less(app, hist) {
		t.Error("expected app before history file at equal score")
	}
	if !cmp.Less(hist, every) {
		t.Error("expected history file before file-index hit at equal score")
	}

	low := Scored{Candidate: candidate.NewEverythingHit(candidate.EverythingResult{Name: "same", Path: "D:/l"}), Score: 99}
	if !cmp.Less(every, low) {
		t.Error("expected higher score to win before type priority applies")
	}
}

func TestComparator_LnkBeforeExeWithinEverything(t *testing.T) {
	cmp := NewComparator()

	lnk := Scored{Candidate: candidate.NewEverythingHit(candidate.EverythingResult{Name: "w", Path: "C:/p/w.lnk"})}
	exe := Scored{Candidate: candidate.NewEverythingHit(candidate.EverythingResult{Name: "w", Path: "C:/p/w.exe"})}
	if !cmp.Less(lnk, exe) {
		t.Error("expected .lnk to sort before .exe among file-index hits")
	}
}

func TestComparator_UseCountTiebreak(t *testing.T) {
	cmp := NewComparator()

	high := Scored{
		Candidate: candidate.NewMemo(candidate.MemoItem{ID: "h", Title: "same"}),
		Signal:    Signal{UseCount: uptr(9)},
	}
	low := Scored{
		Candidate: candidate.NewMemo(candidate.MemoItem{ID: "l", Title: "same"}),
		Signal:    Signal{UseCount: uptr(3)},
	}
	none := Scored{Candidate: candidate.NewMemo(candidate.MemoItem{ID: "n", Title: "same"})}

	if !cmp.Less(high, low) {
		t.Error("expected higher use count first")
	}
	if !cmp.Less(low, none) {
		t.Error("expected defined use count before undefined")
	}
}

func TestComparator_NameCollation(t *testing.T) {
	cmp := NewComparator()

	a := Scored{Candidate: candidate.NewMemo(candidate.MemoItem{ID: "1", Title: "alpha"})}
	b := Scored{Candidate: candidate.NewMemo(candidate.MemoItem{ID: "2", Title: "Beta"})}
	if !cmp.Less(a, b) {
		t.Error("expected alpha before Beta under loose collation")
	}
}
