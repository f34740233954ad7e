package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/stratcoach/internal/db"
	"github.com/alexanderramin/stratcoach/internal/domain"
)

// SQLiteJournalSessionRepo implements JournalSessionRepo using a SQLite database.
type SQLiteJournalSessionRepo struct {
	db db.DBTX
}

// NewSQLiteJournalSessionRepo creates a new SQLiteJournalSessionRepo.
func NewSQLiteJournalSessionRepo(conn db.DBTX) *SQLiteJournalSessionRepo {
	return &SQLiteJournalSessionRepo{db: conn}
}

func (r *SQLiteJournalSessionRepo) Create(ctx context.Context, s *domain.JournalSession) error {
	query := `INSERT INTO coach_sessions (id, started_at, provider, model) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, s.ID, formatTime(s.StartedAt), s.Provider, s.Model)
	if err != nil {
		return fmt.Errorf("inserting coach session: %w", err)
	}
	return nil
}

func (r *SQLiteJournalSessionRepo) GetByID(ctx context.Context, id string) (*domain.JournalSession, error) {
	query := `SELECT s.id, s.started_at, s.provider, s.model,
			(SELECT COUNT(*) FROM completion_calls c WHERE c.session_id = s.id)
		FROM coach_sessions s WHERE s.id = ?`
	var s domain.JournalSession
	var startedAt string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &startedAt, &s.Provider, &s.Model, &s.CallCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("coach session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning coach session: %w", err)
	}
	if s.StartedAt, err = parseTime(startedAt, "started_at"); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteJournalSessionRepo) List(ctx context.Context, limit int) ([]*domain.JournalSession, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	query := `SELECT s.id, s.started_at, s.provider, s.model, COUNT(c.id)
		FROM coach_sessions s
		LEFT JOIN completion_calls c ON c.session_id = s.id
		GROUP BY s.id
		ORDER BY s.started_at DESC, s.id
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing coach sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.JournalSession
	for rows.Next() {
		var s domain.JournalSession
		var startedAt string
		if err := rows.Scan(&s.ID, &startedAt, &s.Provider, &s.Model, &s.CallCount); err != nil {
			return nil, fmt.Errorf("scanning coach session row: %w", err)
		}
		if s.StartedAt, err = parseTime(startedAt, "started_at"); err != nil {
			return nil, err
		}
		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating coach sessions: %w", err)
	}
	return sessions, nil
}

// Delete removes a session and, by cascade, its calls.
func (r *SQLiteJournalSessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM coach_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting coach session: %w", err)
	}
	return nil
}
