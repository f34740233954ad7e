package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stratcoach/internal/db"
	"github.com/alexanderramin/stratcoach/internal/domain"
)

// SQLiteCallRepo implements CallRepo using a SQLite database.
type SQLiteCallRepo struct {
	db db.DBTX
}

// NewSQLiteCallRepo creates a new SQLiteCallRepo.
func NewSQLiteCallRepo(conn db.DBTX) *SQLiteCallRepo {
	return &SQLiteCallRepo{db: conn}
}

func (r *SQLiteCallRepo) Create(ctx context.Context, c *domain.CompletionCall) error {
	query := `INSERT INTO completion_calls
		(id, session_id, task, model, latency_ms, success, error_code, prompt_chars, response_chars, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.SessionID,
		string(c.Task),
		c.Model,
		c.LatencyMs,
		boolToInt(c.Success),
		c.ErrorCode,
		c.PromptChars,
		c.ResponseChars,
		formatTime(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting completion call: %w", err)
	}
	return nil
}

func (r *SQLiteCallRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.CompletionCall, error) {
	query := `SELECT id, session_id, task, model, latency_ms, success, error_code, prompt_chars, response_chars, created_at
		FROM completion_calls WHERE session_id = ? ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing completion calls: %w", err)
	}
	defer rows.Close()

	var calls []*domain.CompletionCall
	for rows.Next() {
		var c domain.CompletionCall
		var task, createdAt string
		var success int
		err := rows.Scan(&c.ID, &c.SessionID, &task, &c.Model, &c.LatencyMs, &success,
			&c.ErrorCode, &c.PromptChars, &c.ResponseChars, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scanning completion call row: %w", err)
		}
		c.Task = domain.Step(task)
		c.Success = intToBool(success)
		if c.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}
		calls = append(calls, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completion calls: %w", err)
	}
	return calls, nil
}

func (r *SQLiteCallRepo) CountBySession(ctx context.Context, sessionID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM completion_calls WHERE session_id = ?`, sessionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting completion calls: %w", err)
	}
	return n, nil
}
