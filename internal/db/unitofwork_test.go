package db_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/stratcoach/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func insertSession(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO coach_sessions (id, started_at, provider) VALUES (?, ?, ?)`,
		id, "2026-03-14T09:30:00Z", "openai")
	return err
}

// sessionExists reads through a fresh transaction so it sees only committed rows.
func sessionExists(t *testing.T, uow *db.SQLiteUnitOfWork, id string) bool {
	t.Helper()
	var n int
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM coach_sessions WHERE id = ?`, id).Scan(&n)
	})
	require.NoError(t, err)
	return n > 0
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertSession(ctx, tx, "s1")
	})
	require.NoError(t, err)
	assert.True(t, sessionExists(t, uow, "s1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertSession(ctx, tx, "s2"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.False(t, sessionExists(t, uow, "s2"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertSession(ctx, tx, "s3")
			panic("boom")
		})
	})
	assert.False(t, sessionExists(t, uow, "s3"), "row should not exist after panic rollback")
}

func TestWithinTx_ReplaysBusyTransaction(t *testing.T) {
	uow := openTestUoW(t).WithBusyRetries(2, time.Millisecond)

	attempts := 0
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		attempts++
		if err := insertSession(ctx, tx, "s4"); err != nil {
			return err
		}
		if attempts == 1 {
			return errors.New("database is locked (5) (SQLITE_BUSY)")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.True(t, sessionExists(t, uow, "s4"), "the replay commits after the first attempt rolled back")
}

func TestWithinTx_BusyRetriesExhausted(t *testing.T) {
	uow := openTestUoW(t).WithBusyRetries(1, time.Millisecond)

	attempts := 0
	err := uow.WithinTx(context.Background(), func(context.Context, db.DBTX) error {
		attempts++
		return errors.New("database is locked")
	})
	require.Error(t, err)
	assert.Equal(t, 2, attempts)
}

func TestWithinTx_OtherErrorsAreNotReplayed(t *testing.T) {
	uow := openTestUoW(t)

	attempts := 0
	err := uow.WithinTx(context.Background(), func(context.Context, db.DBTX) error {
		attempts++
		return errors.New("constraint failed")
	})
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestWithinTx_ContextCancelledDuringBackoff(t *testing.T) {
	uow := openTestUoW(t).WithBusyRetries(3, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	err := uow.WithinTx(ctx, func(context.Context, db.DBTX) error {
		cancel()
		return errors.New("SQLITE_BUSY")
	})
	assert.ErrorIs(t, err, context.Canceled)
}
