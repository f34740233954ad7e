package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/stratcoach/internal/domain"
	"github.com/alexanderramin/stratcoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalSessionRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJournalSessionRepo(db)
	ctx := context.Background()

	sess := testutil.NewTestJournalSession(testutil.WithProvider("ollama", "llama3.2"))
	require.NoError(t, repo.Create(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, fetched.ID)
	assert.Equal(t, "ollama", fetched.Provider)
	assert.Equal(t, "llama3.2", fetched.Model)
	assert.True(t, sess.StartedAt.Equal(fetched.StartedAt))
	assert.Zero(t, fetched.CallCount)
}

func TestJournalSessionRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJournalSessionRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJournalSessionRepo_ListNewestFirstWithCounts(t *testing.T) {
	db := testutil.NewTestDB(t)
	sessions := NewSQLiteJournalSessionRepo(db)
	calls := NewSQLiteCallRepo(db)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	older := testutil.NewTestJournalSession(testutil.WithStartedAt(now.Add(-2 * time.Hour)))
	newer := testutil.NewTestJournalSession(testutil.WithStartedAt(now.Add(-1 * time.Hour)))
	require.NoError(t, sessions.Create(ctx, older))
	require.NoError(t, sessions.Create(ctx, newer))

	require.NoError(t, calls.Create(ctx, testutil.NewTestCall(older.ID, domain.StepOutcomes)))
	require.NoError(t, calls.Create(ctx, testutil.NewTestCall(older.ID, domain.StepPlan)))

	list, err := sessions.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, 0, list[0].CallCount)
	assert.Equal(t, older.ID, list[1].ID)
	assert.Equal(t, 2, list[1].CallCount)

	limited, err := sessions.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, newer.ID, limited[0].ID)
}

func TestJournalSessionRepo_DeleteCascadesCalls(t *testing.T) {
	db := testutil.NewTestDB(t)
	sessions := NewSQLiteJournalSessionRepo(db)
	calls := NewSQLiteCallRepo(db)
	ctx := context.Background()

	sess := testutil.NewTestJournalSession()
	require.NoError(t, sessions.Create(ctx, sess))
	require.NoError(t, calls.Create(ctx, testutil.NewTestCall(sess.ID, domain.StepRewards)))

	require.NoError(t, sessions.Delete(ctx, sess.ID))

	n, err := calls.CountBySession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}
