package service

import (
	"context"
	"fmt"

	"github.com/remaimber-it/trivia/internal/domain/session"
	"github.com/remaimber-it/trivia/internal/id"
	"github.com/remaimber-it/trivia/internal/logger"
)

// SessionService persists finished quizzes and reads them back for replay.
type SessionService struct {
	store   SessionStore
	catalog Catalog
	clock   clock
	log     *logger.Logger
}

// SaveSessionResult stores r with a snapshot of every question played and
// returns the session id.
func (s *SessionService) SaveSessionResult(ctx context.Context, r session.Result) (string, error) {
	if !r.Mode.Valid() {
		return "", fmt.Errorf("save session: invalid mode %q", r.Mode)
	}
	sessionID := r.ID
	if sessionID == "" {
		sessionID = id.GenerateID()
	}

	answers := make(map[int64]string, len(r.Answers))
	for k, v := range r.Answers {
		answers[k] = v
	}
	ts := &session.TriviaSession{
		ID:             sessionID,
		Mode:           r.Mode,
		CategorySlug:   r.CategorySlug,
		Locale:         r.Locale,
		TotalQuestions: r.TotalQuestions,
		CorrectAnswers: r.CorrectAnswers,
		Elapsed:        r.Elapsed,
		BestStreak:     r.BestStreak,
		CompletedAt:    s.clock.Now(),
		Transcript: session.Transcript{
			Questions: append([]session.QuestionSnapshot(nil), r.Questions...),
			Answers:   answers,
		},
	}
	if err := s.store.SaveSession(ctx, ts); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return sessionID, nil
}

// SessionByID returns store.ErrNotFound (wrapped) for unknown ids.
func (s *SessionService) SessionByID(ctx context.Context, sessionID string) (*session.TriviaSession, error) {
	ts, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	s.annotate(ctx, ts)
	return ts, nil
}

// RecentSessions returns up to limit sessions, most recent first.
func (s *SessionService) RecentSessions(ctx context.Context, limit int) ([]*session.TriviaSession, error) {
	if limit <= 0 {
		return []*session.TriviaSession{}, nil
	}
	sessions, err := s.store.ListSessions(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	s.annotate(ctx, sessions...)
	return sessions, nil
}

// AllSessions returns the whole history, most recent first.
func (s *SessionService) AllSessions(ctx context.Context) ([]*session.TriviaSession, error) {
	sessions, err := s.store.ListSessions(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	s.annotate(ctx, sessions...)
	return sessions, nil
}

// annotate flags transcript questions that left the catalog. A failed
// lookup leaves the flags empty; the sessions stay readable.
func (s *SessionService) annotate(ctx context.Context, sessions ...*session.TriviaSession) {
	seen := make(map[int64]bool)
	var ids []int64
	for _, ts := range sessions {
		if ts.TranscriptCorrupt {
			s.log.Warn("session transcript unreadable", "session_id", ts.ID)
		}
		for _, qid := range ts.Transcript.QuestionIDs() {
			if !seen[qid] {
				seen[qid] = true
				ids = append(ids, qid)
			}
		}
	}
	if len(ids) == 0 {
		return
	}

	existing, err := s.catalog.ExistingQuestionIDs(ctx, ids)
	if err != nil {
		s.log.Warn("failed to check transcript questions", "error", err)
		return
	}
	present := make(map[int64]bool, len(existing))
	for _, qid := range existing {
		present[qid] = true
	}

	for _, ts := range sessions {
		for _, qid := range ts.Transcript.QuestionIDs() {
			if !present[qid] {
				ts.UnavailableQuestionIDs = append(ts.UnavailableQuestionIDs, qid)
			}
		}
	}
}
