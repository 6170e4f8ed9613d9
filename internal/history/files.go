package history

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// RecordOpen upserts the history row for a launched path. The path is
// stored normalized so later lookups are case- and separator-insensitive.
func (s *SQLiteStore) RecordOpen(path string) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	normalized := candidate.NormalizePath(path)
	name := filepath.Base(path)
	isFolder := 0
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		isFolder = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO file_history (path, name, last_used, use_count, is_folder)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT(path) DO UPDATE SET
			last_used = excluded.last_used,
			use_count = file_history.use_count + 1,
			is_folder = excluded.is_folder
	`, normalized, name, time.Now().Unix(), isFolder)

	if err != nil {
		log.Printf("Warning: failed to record open: %v", err)
	}
	return nil
}

// Search returns matching history items, best first. Matching is the
// provider-local pre-filter: exact/prefix/substring name tiers, a small
// path bonus and a capped use-count boost. The ranking core re-scores
// whatever this returns, so the filter only has to be roughly right.
func (s *SQLiteStore) Search(query string) ([]candidate.FileHistoryItem, error) {
	items, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		sort.Slice(items, func(i, j int) bool {
			return items[i].LastUsed > items[j].LastUsed
		})
		return items, nil
	}

	type scored struct {
		item  candidate.FileHistoryItem
		score int64
	}
	var results []scored

	for _, item := range items {
		name := strings.ToLower(item.Name)
		path := strings.ToLower(item.Path)

		var score int64
		switch {
		case name == query:
			score += 1000
		case strings.HasPrefix(name, query):
			score += 500
		case strings.Contains(name, query):
			score += 100
		}
		if strings.Contains(path, query) {
			score += 10
		}
		if score == 0 {
			continue
		}

		boost := int64(item.UseCount)
		if boost > 100 {
			boost = 100
		}
		results = append(results, scored{item: item, score: score + boost})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	out := make([]candidate.FileHistoryItem, len(results))
	for i, r := range results {
		out[i] = r.item
	}
	return out, nil
}

// loadAll reads every history row. The table is bounded by real user
// behavior (hundreds of entries), so a full read per search is fine.
func (s *SQLiteStore) loadAll() ([]candidate.FileHistoryItem, error) {
	if !s.enabled || s.db == nil {
		return []candidate.FileHistoryItem{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT path, name, last_used, use_count, is_folder
		FROM file_history
	`)
	if err != nil {
		log.Printf("Warning: failed to query file history: %v", err)
		return []candidate.FileHistoryItem{}, nil
	}
	defer rows.Close()

	var items []candidate.FileHistoryItem
	for rows.Next() {
		var item candidate.FileHistoryItem
		var isFolder int
		if err := rows.Scan(&item.Path, &item.Name, &item.LastUsed, &item.UseCount, &isFolder); err != nil {
			log.Printf("Warning: failed to scan history row: %v", err)
			continue
		}
		item.IsFolder = isFolder == 1
		items = append(items, item)
	}
	return items, nil
}

// RecordSearch stores one search-analytics row. Only a hash of the query is
// persisted.
func (s *SQLiteStore) RecordSearch(searchID, query string, resultCount int) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO search_history (search_id, query_hash, timestamp, results_count)
		VALUES (?, ?, ?, ?)
	`, searchID, HashQuery(query), time.Now().UTC().Format(time.RFC3339), resultCount)

	if err != nil {
		log.Printf("Warning: failed to record search: %v", err)
	}
	return nil
}

// Cleanup removes entries unused for longer than retention and reclaims
// space.
func (s *SQLiteStore) Cleanup(retention time.Duration) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-retention).Unix()
	if _, err := s.db.Exec("DELETE FROM file_history WHERE last_used < ?", cutoff); err != nil {
		log.Printf("Warning: failed to cleanup file_history: %v", err)
	}

	cutoffStr := time.Now().Add(-retention).UTC().Format(time.RFC3339)
	if _, err := s.db.Exec("DELETE FROM search_history WHERE timestamp < ?", cutoffStr); err != nil {
		log.Printf("Warning: failed to cleanup search_history: %v", err)
	}

	if _, err := s.db.Exec("VACUUM"); err != nil {
		log.Printf("Warning: failed to vacuum database: %v", err)
	}
	return nil
}
