package rank

import (
	"testing"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

func TestResolveSignal_OpenHistoryWins(t *testing.T) {
	c := candidate.NewHistoryFile(candidate.FileHistoryItem{
		Name:     "doc.txt",
		Path:     "C:\\Files\\Doc.txt",
		LastUsed: 1000,
		UseCount: 7,
	})
	open := map[string]int64{"c:/files/doc.txt": 5000}

	sig := ResolveSignal(c, open)
	if sig.LastUsedMS != 5000*1000 {
		t.Errorf("expected live open-history recency 5000000, got %d", sig.LastUsedMS)
	}
	if sig.UseCount == nil || *sig.UseCount != 7 {
		t.Errorf("expected use count 7 from payload, got %v", sig.UseCount)
	}
}

func TestResolveSignal_FallsBackToPayload(t *testing.T) {
	c := candidate.NewHistoryFile(candidate.FileHistoryItem{
		Name:     "doc.txt",
		Path:     "C:/files/doc.txt",
		LastUsed: 1234,
	})

	sig := ResolveSignal(c, nil)
	if sig.LastUsedMS != 1234*1000 {
		t.Errorf("expected payload recency in ms, got %d", sig.LastUsedMS)
	}
}

func TestResolveSignal_NoData(t *testing.T) {
	c := candidate.NewEverythingHit(candidate.EverythingResult{Name: "f", Path: "D:/f"})

	sig := ResolveSignal(c, map[string]int64{})
	if sig.LastUsedMS != 0 {
		t.Errorf("expected zero recency, got %d", sig.LastUsedMS)
	}
	if sig.UseCount != nil {
		t.Errorf("expected nil use count, got %v", *sig.UseCount)
	}
}
