package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/remaimber-it/trivia/internal/domain/streak"
	"github.com/remaimber-it/trivia/internal/store"
)

// StreakTracker owns daily progress and the daily streak.
type StreakTracker struct {
	daily DailyStore
	clock clock
}

// Today is the current calendar day, YYYY-MM-DD.
func (t *StreakTracker) Today() string {
	return t.clock.Today()
}

// StartDailyProgress creates today's record when the first daily quiz of
// the day begins. An existing record is left alone.
func (t *StreakTracker) StartDailyProgress(ctx context.Context, totalQuestions int) error {
	if err := t.daily.StartDailyProgress(ctx, t.clock.Today(), totalQuestions); err != nil {
		return fmt.Errorf("start daily progress: %w", err)
	}
	return nil
}

// SaveDailyProgress marks today's daily quiz as completed and raises the
// best streak. Call it once per completed daily quiz.
func (t *StreakTracker) SaveDailyProgress(ctx context.Context, totalQuestions, correctAnswers int) error {
	now := t.clock.Now()
	err := t.daily.UpsertDailyProgress(ctx, streak.DailyProgress{
		Date:           t.clock.Today(),
		TotalQuestions: totalQuestions,
		CorrectAnswers: correctAnswers,
		CompletedAt:    &now,
	})
	if err != nil {
		return fmt.Errorf("save daily progress: %w", err)
	}

	current, err := t.DailyStreak(ctx)
	if err != nil {
		return err
	}
	if err := t.daily.RaiseBestStreak(ctx, current); err != nil {
		return fmt.Errorf("raise best streak: %w", err)
	}
	return nil
}

// DailyProgress returns today's record, or nil when no daily quiz started today.
func (t *StreakTracker) DailyProgress(ctx context.Context) (*streak.DailyProgress, error) {
	p, err := t.daily.GetDailyProgress(ctx, t.clock.Today())
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("daily progress: %w", err)
	}
	return p, nil
}

func (t *StreakTracker) IsDailyTriviaCompleted(ctx context.Context) (bool, error) {
	p, err := t.DailyProgress(ctx)
	if err != nil {
		return false, err
	}
	return p != nil && p.Completed(), nil
}

// DailyStreak counts consecutive completed days ending today or yesterday.
func (t *StreakTracker) DailyStreak(ctx context.Context) (int, error) {
	dates, err := t.daily.CompletedDates(ctx)
	if err != nil {
		return 0, fmt.Errorf("completed dates: %w", err)
	}
	return streak.Current(dates, t.clock.Today()), nil
}

// BestStreak is the longest streak ever reached. It never decreases.
func (t *StreakTracker) BestStreak(ctx context.Context) (int, error) {
	stored, err := t.daily.GetBestStreak(ctx)
	if err != nil {
		return 0, fmt.Errorf("best streak: %w", err)
	}
	dates, err := t.daily.CompletedDates(ctx)
	if err != nil {
		return 0, fmt.Errorf("completed dates: %w", err)
	}
	return max(stored, streak.Longest(dates)), nil
}
