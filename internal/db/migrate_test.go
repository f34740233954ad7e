package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time; should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"coach_sessions", "completion_calls"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_coach_sessions_started",
		"idx_completion_calls_session",
		"idx_completion_calls_created",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_WALModeRequested(t *testing.T) {
	// In-memory SQLite uses "memory" journal mode; WAL only applies to file DBs.
	db := openTestDB(t)

	var mode string
	err := db.QueryRow(`PRAGMA journal_mode`).Scan(&mode)
	require.NoError(t, err)
	assert.Equal(t, "memory", mode)
}

func TestOpenDB_FileUsesWAL(t *testing.T) {
	path := t.TempDir() + "/nested/journal.db"
	db, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestMigrate_TaskCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO coach_sessions (id, started_at) VALUES ('s1', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO completion_calls (id, session_id, task, created_at)
		VALUES ('c1', 's1', 'goals', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "goals is not a completion task")

	_, err = db.Exec(`INSERT INTO completion_calls (id, session_id, task, created_at)
		VALUES ('c2', 's1', 'plan', '2026-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}

func TestMigrate_CascadeDeletesCalls(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO coach_sessions (id, started_at) VALUES ('s1', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO completion_calls (id, session_id, task, created_at)
		VALUES ('c1', 's1', 'plan', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM coach_sessions WHERE id = 's1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM completion_calls`).Scan(&n))
	assert.Zero(t, n)
}

// A journal created before sessions carried a model column upgrades in place
// and keeps its rows.
func TestMigrate_UpgradeAddsModelColumn(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE coach_sessions (
		id         TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		provider   TEXT NOT NULL DEFAULT ''
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO coach_sessions (id, started_at, provider) VALUES ('old', '2025-06-01T00:00:00Z', 'openai')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var provider, model string
	err = db.QueryRow(`SELECT provider, model FROM coach_sessions WHERE id = 'old'`).Scan(&provider, &model)
	require.NoError(t, err)
	assert.Equal(t, "openai", provider)
	assert.Equal(t, "", model)
}
