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
	`CREATE TABLE IF NOT EXISTS coach_sessions (
		id         TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		provider   TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_coach_sessions_started ON coach_sessions(started_at)`,

	`CREATE TABLE IF NOT EXISTS completion_calls (
		id             TEXT PRIMARY KEY,
		session_id     TEXT NOT NULL REFERENCES coach_sessions(id) ON DELETE CASCADE,
		task           TEXT NOT NULL
		               CHECK(task IN ('outcomes','plan','rewards','refine')),
		model          TEXT NOT NULL DEFAULT '',
		latency_ms     INTEGER NOT NULL DEFAULT 0,
		success        INTEGER NOT NULL DEFAULT 0,
		error_code     TEXT NOT NULL DEFAULT '',
		prompt_chars   INTEGER NOT NULL DEFAULT 0,
		response_chars INTEGER NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_completion_calls_session ON completion_calls(session_id)`,
	`CREATE INDEX IF NOT EXISTS idx_completion_calls_created ON completion_calls(created_at)`,

	// Sessions record the model alongside the provider.
	`ALTER TABLE coach_sessions ADD COLUMN model TEXT NOT NULL DEFAULT ''`,
}
