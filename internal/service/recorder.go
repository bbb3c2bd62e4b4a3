package service

import (
	"context"
	"fmt"

	"github.com/remaimber-it/trivia/internal/domain/attempt"
	"github.com/remaimber-it/trivia/internal/domain/question"
)

// Recorder appends answer attempts and derives mastery from them.
// It does not deduplicate: every call is a new attempt.
type Recorder struct {
	attempts AttemptStore
	policy   attempt.Policy
	clock    clock
}

// RecordAnswer appends one attempt stamped with the current time.
func (r *Recorder) RecordAnswer(ctx context.Context, questionID int64, correct bool, mode attempt.Mode, sessionID *string) (*attempt.Attempt, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", attempt.ErrInvalidMode, mode)
	}
	a := attempt.New(questionID, correct, mode, sessionID, r.clock.Now())
	if err := r.attempts.SaveAttempt(ctx, a); err != nil {
		return nil, fmt.Errorf("record answer: %w", err)
	}
	return a, nil
}

// SubmitAnswer grades chosen against q and records the outcome.
func (r *Recorder) SubmitAnswer(ctx context.Context, q question.Question, chosen string, mode attempt.Mode, sessionID *string) (bool, error) {
	correct := q.IsCorrect(chosen)
	if _, err := r.RecordAnswer(ctx, q.ID, correct, mode, sessionID); err != nil {
		return false, err
	}
	return correct, nil
}

// IsMastered evaluates the mastery policy over the question's history.
func (r *Recorder) IsMastered(ctx context.Context, questionID int64) (bool, error) {
	histories, err := r.attempts.AttemptHistories(ctx, []int64{questionID})
	if err != nil {
		return false, fmt.Errorf("attempt history: %w", err)
	}
	return r.policy(histories[questionID]), nil
}

// MasteredCount counts how many of ids are mastered.
func (r *Recorder) MasteredCount(ctx context.Context, ids []int64) (int, error) {
	histories, err := r.attempts.AttemptHistories(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("attempt histories: %w", err)
	}
	return countMastered(ids, histories, r.policy), nil
}

// Summary condenses the question's attempt history.
func (r *Recorder) Summary(ctx context.Context, questionID int64) (attempt.Summary, error) {
	histories, err := r.attempts.AttemptHistories(ctx, []int64{questionID})
	if err != nil {
		return attempt.Summary{}, fmt.Errorf("attempt history: %w", err)
	}
	return attempt.Summarize(questionID, histories[questionID]), nil
}

func countMastered(ids []int64, histories map[int64][]attempt.Attempt, policy attempt.Policy) int {
	n := 0
	for _, id := range ids {
		if policy(histories[id]) {
			n++
		}
	}
	return n
}
