package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS workout_types (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL CHECK(name != ''),
		created_at TEXT NOT NULL
	)`,

	// workout_type_id is deliberately not a foreign key: sessions outlive
	// their type and fall back to an "Unknown" label when displayed.
	`CREATE TABLE IF NOT EXISTS workout_sessions (
		id              TEXT PRIMARY KEY,
		workout_type_id TEXT NOT NULL,
		started_at      TEXT NOT NULL,
		minutes         INTEGER NOT NULL CHECK(minutes >= 0),
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_started ON workout_sessions(started_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_type ON workout_sessions(workout_type_id)`,

	// Free-text note attached to a session.
	`ALTER TABLE workout_sessions ADD COLUMN note TEXT NOT NULL DEFAULT ''`,
}
