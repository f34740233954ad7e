package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// UnitOfWork runs a function inside one transaction. Repositories built on
// the DBTX passed to fn take part in it.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

// DefaultBusyRetries bounds how often a transaction is replayed when another
// process holds the journal's write lock.
const DefaultBusyRetries = 3

// SQLiteUnitOfWork implements UnitOfWork with database/sql transactions.
// Two wizards may share one journal file, so a transaction that fails with
// SQLITE_BUSY is rolled back and replayed after a short backoff.
type SQLiteUnitOfWork struct {
	db          *sql.DB
	busyRetries int
	backoff     time.Duration
}

// NewSQLiteUnitOfWork creates a UnitOfWork backed by the given *sql.DB.
func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db, busyRetries: DefaultBusyRetries, backoff: 25 * time.Millisecond}
}

// WithBusyRetries overrides the replay budget; 0 disables replays.
func (u *SQLiteUnitOfWork) WithBusyRetries(n int, backoff time.Duration) *SQLiteUnitOfWork {
	u.busyRetries = max(n, 0)
	u.backoff = backoff
	return u
}

func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	var err error
	for attempt := 0; attempt <= u.busyRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("waiting for journal lock: %w", ctx.Err())
			case <-time.After(u.backoff * time.Duration(attempt)):
			}
		}
		err = u.runOnce(ctx, fn)
		if !isBusy(err) {
			return err
		}
	}
	return err
}

func (u *SQLiteUnitOfWork) runOnce(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// isBusy matches the lock errors modernc.org/sqlite reports as text.
func isBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}
