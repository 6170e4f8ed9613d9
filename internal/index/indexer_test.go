package index

import (
	"testing"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

func newTestIndexer(t *testing.T) *Indexer {
	t.Helper()
	idx, err := NewIndexer()
	if err != nil {
		t.Fatalf("failed to create indexer: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func testRecords() []candidate.EverythingResult {
	return []candidate.EverythingResult{
		{Name: "report.docx", Path: "C:/Users/me/Documents/report.docx"},
		{Name: "budget.xlsx", Path: "C:/Users/me/Documents/budget.xlsx"},
		{Name: "Documents", Path: "C:/Users/me/Documents", IsFolder: true},
		{Name: "notes.txt", Path: "D:/notes/notes.txt"},
	}
}

func TestIndexer_IndexAndCount(t *testing.T) {
	idx := newTestIndexer(t)

	if err := idx.IndexFiles(testRecords()); err != nil {
		t.Fatalf("index failed: %v", err)
	}

	count, err := idx.Count()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 4 {
		t.Errorf("expected 4 documents, got %d", count)
	}
}

func TestIndexer_SearchByName(t *testing.T) {
	idx := newTestIndexer(t)
	if err := idx.IndexFiles(testRecords()); err != nil {
		t.Fatal(err)
	}

	hits, total, err := idx.Search("report", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total == 0 || len(hits) == 0 {
		t.Fatal("expected at least one hit for report")
	}

	found := false
	for _, h := range hits {
		if h.Name == "report.docx" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected report.docx among hits, got %v", hits)
	}
}

func TestIndexer_FolderFlagRoundTrip(t *testing.T) {
	idx := newTestIndexer(t)
	if err := idx.IndexFiles(testRecords()); err != nil {
		t.Fatal(err)
	}

	hits, _, err := idx.Search("Documents", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	var folder *candidate.EverythingResult
	for i, h := range hits {
		if h.Path == "C:/Users/me/Documents" {
			folder = &hits[i]
		}
	}
	if folder == nil {
		t.Fatal("expected the Documents folder among hits")
	}
	if !folder.IsFolder {
		t.Error("expected folder flag to survive the round trip")
	}
}

func TestIndexer_ReindexSamePathUpdates(t *testing.T) {
	idx := newTestIndexer(t)

	first := []candidate.EverythingResult{{Name: "old.txt", Path: "C:/f/old.txt"}}
	if err := idx.IndexFiles(first); err != nil {
		t.Fatal(err)
	}
	// Case variant of the same path must update, not duplicate.
	second := []candidate.EverythingResult{{Name: "old.txt", Path: "C:/F/OLD.TXT"}}
	if err := idx.IndexFiles(second); err != nil {
		t.Fatal(err)
	}

	count, err := idx.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected 1 document after reindex of path variant, got %d", count)
	}
}

func TestIndexer_Remove(t *testing.T) {
	idx := newTestIndexer(t)
	if err := idx.IndexFiles(testRecords()); err != nil {
		t.Fatal(err)
	}

	if err := idx.Remove("C:/Users/me/Documents/report.docx"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	count, err := idx.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("expected 3 documents after remove, got %d", count)
	}
}
