package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/remaimber-it/trivia/internal/domain/attempt"
	"github.com/remaimber-it/trivia/internal/domain/question"
)

// Selector picks the questions of a quiz. Every policy is locale-scoped
// and returns at most the configured session size. An empty result means
// nothing is eligible and is not an error.
type Selector struct {
	catalog  Catalog
	attempts AttemptStore
	policy   attempt.Policy
	size     int
	clock    clock

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// Select dispatches on mode. slug is required for ModeCategory only.
func (s *Selector) Select(ctx context.Context, mode attempt.Mode, locale, slug string) ([]question.Question, error) {
	switch mode {
	case attempt.ModeDaily:
		return s.Daily(ctx, locale)
	case attempt.ModeMixed:
		return s.Mixed(ctx, locale)
	case attempt.ModeCategory:
		return s.Category(ctx, locale, slug)
	}
	return nil, fmt.Errorf("%w: %q", attempt.ErrInvalidMode, mode)
}

// Count dispatches the counts-only variants on mode.
func (s *Selector) Count(ctx context.Context, mode attempt.Mode, locale, slug string) (int, error) {
	switch mode {
	case attempt.ModeDaily:
		return s.DailyCount(ctx, locale)
	case attempt.ModeMixed:
		return s.MixedCount(ctx, locale)
	case attempt.ModeCategory:
		return s.CategoryCount(ctx, locale, slug)
	}
	return 0, fmt.Errorf("%w: %q", attempt.ErrInvalidMode, mode)
}

// ============================================================================
// Daily
// ============================================================================

// Daily returns the questions whose fact was shown today, in catalog order,
// so restarting the daily quiz on the same day yields the same set.
func (s *Selector) Daily(ctx context.Context, locale string) ([]question.Question, error) {
	qs, err := s.catalog.QuestionsShownOn(ctx, locale, s.clock.Today())
	if err != nil {
		return nil, fmt.Errorf("daily questions: %w", err)
	}
	return s.capped(qs), nil
}

// DailyCount is the size of today's pool.
func (s *Selector) DailyCount(ctx context.Context, locale string) (int, error) {
	n, err := s.catalog.CountShownOn(ctx, locale, s.clock.Today())
	if err != nil {
		return 0, fmt.Errorf("count daily questions: %w", err)
	}
	return n, nil
}

// ============================================================================
// Mixed
// ============================================================================

// Mixed draws a random slice of never-attempted questions across categories.
func (s *Selector) Mixed(ctx context.Context, locale string) ([]question.Question, error) {
	ids, err := s.attempts.UnansweredQuestionIDs(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("unanswered questions: %w", err)
	}

	s.shuffleIDs(ids)
	if len(ids) > s.size {
		ids = ids[:s.size]
	}

	qs, err := s.catalog.QuestionsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return inOrder(qs, ids), nil
}

// MixedCount is the number of unanswered questions in the locale.
func (s *Selector) MixedCount(ctx context.Context, locale string) (int, error) {
	n, err := s.attempts.CountUnanswered(ctx, locale)
	if err != nil {
		return 0, fmt.Errorf("count unanswered questions: %w", err)
	}
	return n, nil
}

// ============================================================================
// Category
// ============================================================================

// Category returns unmastered questions of one category. Never-attempted
// questions come first, then the least recently attempted, random within
// ties, so consecutive sessions walk through the whole remaining pool.
func (s *Selector) Category(ctx context.Context, locale, slug string) ([]question.Question, error) {
	qs, err := s.catalog.QuestionsByCategory(ctx, locale, slug)
	if err != nil {
		return nil, fmt.Errorf("category questions: %w", err)
	}
	histories, err := s.attempts.AttemptHistories(ctx, question.IDs(qs))
	if err != nil {
		return nil, fmt.Errorf("attempt histories: %w", err)
	}

	pool := make([]question.Question, 0, len(qs))
	for _, q := range qs {
		if !s.policy(histories[q.ID]) {
			pool = append(pool, q)
		}
	}

	s.mu.Lock()
	s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	s.mu.Unlock()

	lastAttempt := func(q question.Question) int64 {
		h := histories[q.ID]
		if len(h) == 0 {
			return 0
		}
		return h[len(h)-1].AnsweredAt.UnixNano()
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return lastAttempt(pool[i]) < lastAttempt(pool[j])
	})

	return s.capped(pool), nil
}

// CategoryCount is the number of unmastered questions in the category.
func (s *Selector) CategoryCount(ctx context.Context, locale, slug string) (int, error) {
	ids, err := s.catalog.QuestionIDsByCategory(ctx, locale, slug)
	if err != nil {
		return 0, fmt.Errorf("category question ids: %w", err)
	}
	histories, err := s.attempts.AttemptHistories(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("attempt histories: %w", err)
	}
	n := 0
	for _, id := range ids {
		if !s.policy(histories[id]) {
			n++
		}
	}
	return n, nil
}

// ============================================================================
// Answers
// ============================================================================

// ShuffledAnswers returns a fresh presentation order for q. Games keep the
// order fixed per question; this is the one-off variant.
func (s *Selector) ShuffledAnswers(q question.Question) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return question.ShuffledAnswers(q, s.rng)
}

// newRand derives an independent generator, e.g. for one game.
func (s *Selector) newRand() *rand.Rand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rand.New(rand.NewSource(s.rng.Int63()))
}

func (s *Selector) shuffleIDs(ids []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
}

func (s *Selector) capped(qs []question.Question) []question.Question {
	if len(qs) > s.size {
		return qs[:s.size]
	}
	return qs
}

// inOrder arranges qs in the order of ids, dropping ids that were not found.
func inOrder(qs []question.Question, ids []int64) []question.Question {
	byID := make(map[int64]question.Question, len(qs))
	for _, q := range qs {
		byID[q.ID] = q
	}
	out := make([]question.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			out = append(out, q)
		}
	}
	return out
}
