/*
Package history implements the launcher's usage-history stores.

Two overlapping sources feed the ranking core: a persisted file-history
store (SQLite via modernc.org/sqlite, CGo-free) holding per-path use counts
and last-used timestamps, and an in-memory open-history map of recently
opened paths. The database lives at <data dir>/history.db and degrades
gracefully: if it cannot be opened, every operation becomes a no-op and the
launcher keeps working without history.
*/
package history

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// Store is the persisted file-history interface consumed by providers and
// the CLI.
type Store interface {
	// Init opens the database and runs migrations.
	Init() error

	// RecordOpen upserts a history entry for a launched path: bumps the use
	// count and refreshes the last-used timestamp.
	RecordOpen(path string) error

	// Search returns history items matching the query, best first. An empty
	// query returns everything ordered by last use.
	Search(query string) ([]candidate.FileHistoryItem, error)

	// RecordSearch stores one search-analytics row (hashed query).
	RecordSearch(searchID, query string, resultCount int) error

	// Cleanup removes entries unused for longer than retention.
	Cleanup(retention time.Duration) error

	// Close closes the database.
	Close() error
}

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db       *sql.DB
	dbPath   string
	enabled  bool
	mu       sync.Mutex
	initOnce sync.Once
}

// NewStore creates a store rooted at dataDir. If dataDir is empty the
// default ~/.beacon directory is used. The store is created disabled-safe:
// when the home directory cannot be resolved it still constructs, with all
// operations as no-ops.
func NewStore(dataDir string) *SQLiteStore {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Printf("Warning: failed to get home directory: %v", err)
			return &SQLiteStore{enabled: false}
		}
		dataDir = filepath.Join(home, ".beacon")
	}

	return &SQLiteStore{
		dbPath:  filepath.Join(dataDir, "history.db"),
		enabled: true,
	}
}

// Init opens the database and runs migrations. On failure the store is
// disabled and subsequent operations become no-ops.
func (s *SQLiteStore) Init() error {
	if !s.enabled {
		return nil
	}

	var initErr error
	s.initOnce.Do(func() {
		if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
			initErr = fmt.Errorf("failed to create data directory: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}

		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			initErr = fmt.Errorf("failed to open database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
		s.db = db

		if err := db.Ping(); err != nil {
			initErr = fmt.Errorf("failed to ping database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}

		if err := s.runMigrations(); err != nil {
			initErr = fmt.Errorf("failed to run migrations: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
	})

	return initErr
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	s.db = nil
	return nil
}

// HashQuery creates a SHA256 hash of a query string. Search analytics only
// ever store the hash.
func HashQuery(query string) string {
	hash := sha256.Sum256([]byte(query))
	return hex.EncodeToString(hash[:])
}
