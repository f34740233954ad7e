package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/stratcoach/internal/domain"
	"github.com/alexanderramin/stratcoach/internal/llm"
)

// JournalObserver persists every LLM call event through a JournalService.
// Write failures are logged and never reach the wizard.
type JournalObserver struct {
	journal JournalService
	logger  *slog.Logger
	timeout time.Duration
}

func NewJournalObserver(journal JournalService, logger *slog.Logger) *JournalObserver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &JournalObserver{journal: journal, logger: logger, timeout: 2 * time.Second}
}

func (o *JournalObserver) OnCallComplete(event llm.LLMCallEvent) {
	if event.SessionID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	call := &domain.CompletionCall{
		SessionID:     event.SessionID,
		Task:          domain.Step(event.Task),
		Model:         event.Model,
		LatencyMs:     event.LatencyMs,
		Success:       event.Success,
		ErrorCode:     event.ErrorCode,
		PromptChars:   event.PromptChars,
		ResponseChars: event.ResponseChars,
	}
	if err := o.journal.RecordCall(ctx, call); err != nil {
		o.logger.WarnContext(ctx, "journal_write_failed",
			slog.String("session_id", event.SessionID),
			slog.String("error", err.Error()),
		)
	}
}
