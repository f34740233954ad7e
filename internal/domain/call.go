package domain

import "time"

// JournalSession is one run of the wizard as recorded in the call journal.
type JournalSession struct {
	ID        string
	StartedAt time.Time
	Provider  string
	Model     string

	// CallCount is populated by list queries only.
	CallCount int
}

// CompletionCall is the metadata of a single completion request. Prompt and
// response text are never stored.
type CompletionCall struct {
	ID            string
	SessionID     string
	Task          Step
	Model         string
	LatencyMs     int64
	Success       bool
	ErrorCode     string
	PromptChars   int
	ResponseChars int
	CreatedAt     time.Time
}
