package repository

import (
	"context"

	"github.com/alexanderramin/stratcoach/internal/domain"
)

type JournalSessionRepo interface {
	Create(ctx context.Context, s *domain.JournalSession) error
	GetByID(ctx context.Context, id string) (*domain.JournalSession, error)
	// List returns sessions newest first with CallCount filled in.
	List(ctx context.Context, limit int) ([]*domain.JournalSession, error)
	Delete(ctx context.Context, id string) error
}

type CallRepo interface {
	Create(ctx context.Context, c *domain.CompletionCall) error
	ListBySession(ctx context.Context, sessionID string) ([]*domain.CompletionCall, error)
	CountBySession(ctx context.Context, sessionID string) (int, error)
}
