// Package delivery implements the delivery collaborator as a SQLite-backed
// archive: generated documents are persisted for downstream pickup, and every
// terminal outcome is journaled.
package delivery

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens (or creates) a SQLite database at the given path and ensures
// all required tables exist. Pass ":memory:" for an in-memory database.
func InitDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return db, nil
}

func createTables(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reports (
			id TEXT PRIMARY KEY,
			report_id TEXT NOT NULL,
			report_type TEXT NOT NULL,
			schema_version TEXT NOT NULL,
			document BLOB NOT NULL,
			size_bytes INTEGER NOT NULL,
			generated_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_type ON reports(report_type)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_report_id ON reports(report_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_generated_at ON reports(generated_at)`,

		`CREATE TABLE IF NOT EXISTS outcomes (
			id TEXT PRIMARY KEY,
			report_id TEXT NOT NULL,
			report_type TEXT NOT NULL,
			outcome TEXT NOT NULL,
			detail TEXT NOT NULL,
			recorded_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outcomes_outcome ON outcomes(outcome)`,
		`CREATE INDEX IF NOT EXISTS idx_outcomes_report_type ON outcomes(report_type)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}

	return nil
}
