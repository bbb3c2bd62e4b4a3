package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/remaimber-it/trivia/internal/domain/streak"
)

// ============================================================================
// Daily progress
// ============================================================================

// StartDailyProgress creates the row for date unless one exists.
func (s *SQLiteStore) StartDailyProgress(ctx context.Context, date string, totalQuestions int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO daily_progress (date, total_questions, correct_answers, completed_at)
		VALUES (?, ?, 0, NULL)
		ON CONFLICT(date) DO NOTHING
	`, date, totalQuestions)
	return err
}

// UpsertDailyProgress writes the totals for p.Date in one statement. An
// existing completion timestamp is kept.
func (s *SQLiteStore) UpsertDailyProgress(ctx context.Context, p streak.DailyProgress) error {
	var completedAt any
	if p.CompletedAt != nil {
		completedAt = p.CompletedAt.UnixMilli()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO daily_progress (date, total_questions, correct_answers, completed_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			total_questions = excluded.total_questions,
			correct_answers = excluded.correct_answers,
			completed_at = COALESCE(daily_progress.completed_at, excluded.completed_at)
	`, p.Date, p.TotalQuestions, p.CorrectAnswers, completedAt)
	return err
}

func (s *SQLiteStore) GetDailyProgress(ctx context.Context, date string) (*streak.DailyProgress, error) {
	var (
		p           streak.DailyProgress
		completedAt sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT date, total_questions, correct_answers, completed_at FROM daily_progress WHERE date = ?", date,
	).Scan(&p.Date, &p.TotalQuestions, &p.CorrectAnswers, &completedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if completedAt.Valid {
		t := time.UnixMilli(completedAt.Int64)
		p.CompletedAt = &t
	}
	return &p, nil
}

// CompletedDates lists every date with a completion timestamp, ascending.
func (s *SQLiteStore) CompletedDates(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT date FROM daily_progress WHERE completed_at IS NOT NULL ORDER BY date",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// ============================================================================
// Best streak
// ============================================================================

// RaiseBestStreak stores n if it beats the stored best. The value never decreases.
func (s *SQLiteStore) RaiseBestStreak(ctx context.Context, n int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO streak_state (id, best_streak) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET best_streak = MAX(streak_state.best_streak, excluded.best_streak)
	`, n)
	return err
}

// GetBestStreak returns 0 when no streak was ever recorded.
func (s *SQLiteStore) GetBestStreak(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT best_streak FROM streak_state WHERE id = 1").Scan(&n)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return n, err
}
