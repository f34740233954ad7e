package testutil

import (
	"time"

	"github.com/alexanderramin/stratcoach/internal/domain"
	"github.com/google/uuid"
)

// Goal fixtures

// NewTestGoal returns a complete, valid goal.
func NewTestGoal() domain.Goal {
	return domain.Goal{
		Objective: "Grow revenue 20%",
		Metrics:   "Quarterly revenue report",
		Timeline:  "12 months",
		Category:  domain.CategoryFinancial,
	}
}

// Journal session options
type JournalSessionOption func(*domain.JournalSession)

func WithStartedAt(t time.Time) JournalSessionOption {
	return func(s *domain.JournalSession) {
		s.StartedAt = t
	}
}

func WithProvider(provider, model string) JournalSessionOption {
	return func(s *domain.JournalSession) {
		s.Provider = provider
		s.Model = model
	}
}

func NewTestJournalSession(opts ...JournalSessionOption) *domain.JournalSession {
	s := &domain.JournalSession{
		ID:        uuid.New().String(),
		StartedAt: time.Now().UTC().Truncate(time.Second),
		Provider:  "openai",
		Model:     "gpt-4",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Completion call options
type CallOption func(*domain.CompletionCall)

func WithFailure(code string) CallOption {
	return func(c *domain.CompletionCall) {
		c.Success = false
		c.ErrorCode = code
		c.ResponseChars = 0
	}
}

func WithCreatedAt(t time.Time) CallOption {
	return func(c *domain.CompletionCall) {
		c.CreatedAt = t
	}
}

func NewTestCall(sessionID string, task domain.Step, opts ...CallOption) *domain.CompletionCall {
	c := &domain.CompletionCall{
		ID:            uuid.New().String(),
		SessionID:     sessionID,
		Task:          task,
		Model:         "gpt-4",
		LatencyMs:     850,
		Success:       true,
		PromptChars:   120,
		ResponseChars: 400,
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
