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

func callTestSetup(t *testing.T) (*SQLiteCallRepo, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	sess := testutil.NewTestJournalSession()
	require.NoError(t, NewSQLiteJournalSessionRepo(db).Create(context.Background(), sess))
	return NewSQLiteCallRepo(db), sess.ID
}

func TestCallRepo_CreateAndList(t *testing.T) {
	repo, sessID := callTestSetup(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	ok := testutil.NewTestCall(sessID, domain.StepOutcomes, testutil.WithCreatedAt(base))
	failed := testutil.NewTestCall(sessID, domain.StepPlan,
		testutil.WithCreatedAt(base.Add(time.Second)), testutil.WithFailure("TIMEOUT"))
	require.NoError(t, repo.Create(ctx, failed))
	require.NoError(t, repo.Create(ctx, ok))

	list, err := repo.ListBySession(ctx, sessID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, ok.ID, list[0].ID)
	assert.Equal(t, domain.StepOutcomes, list[0].Task)
	assert.True(t, list[0].Success)
	assert.Equal(t, int64(850), list[0].LatencyMs)
	assert.Equal(t, 400, list[0].ResponseChars)

	assert.Equal(t, failed.ID, list[1].ID)
	assert.False(t, list[1].Success)
	assert.Equal(t, "TIMEOUT", list[1].ErrorCode)
}

func TestCallRepo_UnknownSessionRejected(t *testing.T) {
	repo, _ := callTestSetup(t)

	err := repo.Create(context.Background(), testutil.NewTestCall("missing", domain.StepPlan))
	assert.Error(t, err, "foreign key should reject calls for unknown sessions")
}

func TestCallRepo_CountBySession(t *testing.T) {
	repo, sessID := callTestSetup(t)
	ctx := context.Background()

	for _, step := range []domain.Step{domain.StepPlan, domain.StepRewards, domain.StepRefine} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestCall(sessID, step)))
	}

	n, err := repo.CountBySession(ctx, sessID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	empty, err := repo.ListBySession(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
