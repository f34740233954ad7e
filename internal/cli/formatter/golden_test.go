package formatter

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/stratcoach/internal/domain"
	"github.com/alexanderramin/stratcoach/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences for stripping before golden comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes from a string so golden files
// are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// goldenTest compares got against a golden file in testdata/<name>.golden.
// Set GOLDEN_UPDATE=1 to regenerate golden files.
func goldenTest(t *testing.T, name, got string) {
	t.Helper()

	goldenDir := filepath.Join("testdata")
	goldenPath := filepath.Join(goldenDir, name+".golden")

	stripped := stripANSI(got)

	if os.Getenv("GOLDEN_UPDATE") == "1" {
		require.NoError(t, os.MkdirAll(goldenDir, 0755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(stripped), 0644))
		t.Logf("updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) {
		t.Fatalf("golden file %s does not exist; run with GOLDEN_UPDATE=1 to create it", goldenPath)
	}
	require.NoError(t, err)

	assert.Equal(t, string(expected), stripped,
		"output does not match golden file %s; run with GOLDEN_UPDATE=1 to update", goldenPath)
}

const testGoals = "Objective: Grow revenue 20%\nMetrics: Quarterly revenue report\nTimeline: 12 months\nCategory: Financial"

func TestFormatReview_Golden_Ready(t *testing.T) {
	out := FormatReview(wizard.Review{
		Goals:   testGoals,
		Outcome: "Launch EU store",
		Plan:    "1. Hire a country lead\n2. Localize checkout",
		Ready:   true,
	})
	goldenTest(t, "review_ready", out)
}

func TestFormatJournalSessions_Golden(t *testing.T) {
	sessions := []*domain.JournalSession{
		{
			ID:        "3f1c2a9e-0000-4000-8000-000000000001",
			StartedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
			Provider:  "openai",
			Model:     "gpt-4",
			CallCount: 4,
		},
		{
			ID:        "3f1c2a9e-0000-4000-8000-000000000002",
			StartedAt: time.Date(2026, 3, 13, 18, 5, 0, 0, time.UTC),
			Provider:  "ollama",
			Model:     "llama3.2",
		},
	}
	goldenTest(t, "journal_sessions", FormatJournalSessions(sessions))
}

func TestFormatJournalCalls_Golden(t *testing.T) {
	sess := &domain.JournalSession{
		ID:        "3f1c2a9e-0000-4000-8000-000000000001",
		StartedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	calls := []*domain.CompletionCall{
		{Task: domain.StepOutcomes, Success: true, LatencyMs: 850, PromptChars: 212, ResponseChars: 1430, Model: "gpt-4"},
		{Task: domain.StepPlan, ErrorCode: "TIMEOUT", LatencyMs: 120000, PromptChars: 98, Model: "gpt-4"},
		{Task: domain.StepRewards, Success: true, LatencyMs: 1234, PromptChars: 96, ResponseChars: 640, Model: "gpt-4"},
	}
	goldenTest(t, "journal_calls", FormatJournalCalls(sess, calls))
}
