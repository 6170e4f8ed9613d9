package history

import "testing"

func TestOpenHistory_TouchNormalizes(t *testing.T) {
	h := NewOpenHistory()
	h.Touch(`C:\Files\Doc.txt`, 100)

	snap := h.Snapshot()
	if snap["c:/files/doc.txt"] != 100 {
		t.Errorf("expected normalized key with ts 100, got %v", snap)
	}
}

func TestOpenHistory_LatestTouchWins(t *testing.T) {
	h := NewOpenHistory()
	h.Touch("C:/a", 100)
	h.Touch("c:/A", 200)

	if h.Len() != 1 {
		t.Fatalf("expected 1 entry for case variants, got %d", h.Len())
	}
	if got := h.Snapshot()["c:/a"]; got != 200 {
		t.Errorf("expected latest timestamp 200, got %d", got)
	}
}

func TestOpenHistory_SnapshotIsCopy(t *testing.T) {
	h := NewOpenHistory()
	h.Touch("C:/a", 100)

	snap := h.Snapshot()
	snap["c:/a"] = 999
	snap["c:/b"] = 1

	if h.Len() != 1 {
		t.Errorf("mutating a snapshot changed the store size")
	}
	if h.Snapshot()["c:/a"] != 100 {
		t.Errorf("mutating a snapshot changed a stored value")
	}
}
