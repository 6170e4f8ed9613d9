package history

import (
	"fmt"
	"log"
)

// migration is a single schema migration step.
type migration struct {
	version int
	name    string
	up      func() error
}

// runMigrations brings the schema up to the latest version.
func (s *SQLiteStore) runMigrations() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	if err := s.createMigrationsTable(); err != nil {
		return err
	}

	version, err := s.currentMigrationVersion()
	if err != nil {
		return err
	}

	migrations := []migration{
		{version: 1, name: "initial_schema", up: s.migration001InitialSchema},
	}

	for _, m := range migrations {
		if version < m.version {
			log.Printf("Running migration %d: %s", m.version, m.name)
			if err := m.up(); err != nil {
				return fmt.Errorf("migration %d failed: %w", m.version, err)
			}
			if err := s.setMigrationVersion(m.version); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *SQLiteStore) createMigrationsTable() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) currentMigrationVersion() (int, error) {
	var version int
	err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read migration version: %w", err)
	}
	return version, nil
}

func (s *SQLiteStore) setMigrationVersion(version int) error {
	_, err := s.db.Exec(
		"INSERT INTO schema_migrations (version, applied_at) VALUES (?, datetime('now'))",
		version,
	)
	if err != nil {
		return fmt.Errorf("failed to record migration version: %w", err)
	}
	return nil
}

// migration001InitialSchema creates the file-history and search-analytics
// tables.
func (s *SQLiteStore) migration001InitialSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS file_history (
			path TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			last_used INTEGER NOT NULL,
			use_count INTEGER NOT NULL DEFAULT 0,
			is_folder INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_file_history_last_used
			ON file_history(last_used DESC);

		CREATE TABLE IF NOT EXISTS search_history (
			search_id TEXT PRIMARY KEY,
			query_hash TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			results_count INTEGER NOT NULL DEFAULT 0
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create initial schema: %w", err)
	}
	return nil
}
