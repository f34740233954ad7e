package service

import (
	"context"

	"github.com/alexanderramin/stratcoach/internal/domain"
)

// JournalService records completion-call metadata per wizard session.
type JournalService interface {
	StartSession(ctx context.Context, s *domain.JournalSession) error
	RecordCall(ctx context.Context, c *domain.CompletionCall) error
	GetSession(ctx context.Context, id string) (*domain.JournalSession, error)
	ListSessions(ctx context.Context, limit int) ([]*domain.JournalSession, error)
	ListCalls(ctx context.Context, sessionID string) ([]*domain.CompletionCall, error)
}
