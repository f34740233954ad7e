package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/stratcoach/internal/db"
	"github.com/alexanderramin/stratcoach/internal/domain"
	"github.com/alexanderramin/stratcoach/internal/repository"
	"github.com/google/uuid"
)

type journalService struct {
	sessions repository.JournalSessionRepo
	calls    repository.CallRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewJournalService(
	sessions repository.JournalSessionRepo,
	calls repository.CallRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) JournalService {
	return &journalService{
		sessions: sessions,
		calls:    calls,
		uow:      uow,
		observer: combineObservers(observers),
	}
}

func (s *journalService) StartSession(ctx context.Context, session *domain.JournalSession) (err error) {
	start := time.Now()
	defer func() {
		s.observe(ctx, "journal.start_session", start, err, map[string]any{"session_id": session.ID})
	}()

	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now().UTC()
	}
	return s.sessions.Create(ctx, session)
}

// RecordCall stores one call. A session row is created on the fly when it is
// missing, e.g. because StartSession failed at launch.
func (s *journalService) RecordCall(ctx context.Context, call *domain.CompletionCall) (err error) {
	start := time.Now()
	defer func() {
		s.observe(ctx, "journal.record_call", start, err, map[string]any{
			"session_id": call.SessionID,
			"task":       string(call.Task),
		})
	}()

	if call.SessionID == "" {
		return fmt.Errorf("recording call: session id is required")
	}
	if call.ID == "" {
		call.ID = uuid.New().String()
	}
	if call.CreatedAt.IsZero() {
		call.CreatedAt = time.Now().UTC()
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteJournalSessionRepo(tx)
		txCalls := repository.NewSQLiteCallRepo(tx)

		_, err := txSessions.GetByID(ctx, call.SessionID)
		if errors.Is(err, repository.ErrNotFound) {
			err = txSessions.Create(ctx, &domain.JournalSession{
				ID:        call.SessionID,
				StartedAt: call.CreatedAt,
				Model:     call.Model,
			})
		}
		if err != nil {
			return err
		}

		return txCalls.Create(ctx, call)
	})
}

func (s *journalService) GetSession(ctx context.Context, id string) (*domain.JournalSession, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *journalService) ListSessions(ctx context.Context, limit int) ([]*domain.JournalSession, error) {
	return s.sessions.List(ctx, limit)
}

func (s *journalService) ListCalls(ctx context.Context, sessionID string) ([]*domain.CompletionCall, error) {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.calls.ListBySession(ctx, sessionID)
}

func (s *journalService) observe(ctx context.Context, name string, start time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}
