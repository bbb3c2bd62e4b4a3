package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/remaimber-it/trivia/internal/domain/attempt"
)

// ============================================================================
// Question attempts
// ============================================================================

// SaveAttempt appends one attempt and sets its ID. Attempts are never updated.
func (s *SQLiteStore) SaveAttempt(ctx context.Context, a *attempt.Attempt) error {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO question_attempts (question_id, answered_at, is_correct, mode, session_id) VALUES (?, ?, ?, ?, ?)",
		a.QuestionID, a.AnsweredAt.UnixMilli(), a.Correct, string(a.Mode), a.SessionID,
	)
	if err != nil {
		return err
	}
	a.ID, err = result.LastInsertId()
	return err
}

// AttemptHistories returns the attempts of each question, oldest first.
// Questions without attempts are absent from the map.
func (s *SQLiteStore) AttemptHistories(ctx context.Context, questionIDs []int64) (map[int64][]attempt.Attempt, error) {
	out := make(map[int64][]attempt.Attempt)
	for _, chunk := range chunkIDs(questionIDs) {
		err := s.collectAttempts(ctx, out,
			"SELECT id, question_id, answered_at, is_correct, mode, session_id FROM question_attempts WHERE question_id IN ("+
				placeholders(len(chunk))+") ORDER BY answered_at, id",
			int64Args(chunk)...,
		)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// LocaleAttemptHistories returns the attempt histories of every question in
// the locale's catalog, oldest first.
func (s *SQLiteStore) LocaleAttemptHistories(ctx context.Context, locale string) (map[int64][]attempt.Attempt, error) {
	out := make(map[int64][]attempt.Attempt)
	err := s.collectAttempts(ctx, out, `
		SELECT a.id, a.question_id, a.answered_at, a.is_correct, a.mode, a.session_id
		FROM question_attempts a
		JOIN questions q ON q.id = a.question_id
		WHERE q.locale = ?
		ORDER BY a.answered_at, a.id
	`, locale)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteStore) collectAttempts(ctx context.Context, out map[int64][]attempt.Attempt, query string, args ...any) error {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return err
		}
		out[a.QuestionID] = append(out[a.QuestionID], a)
	}
	return rows.Err()
}

func (s *SQLiteStore) AttemptCount(ctx context.Context, questionID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM question_attempts WHERE question_id = ?", questionID,
	).Scan(&n)
	return n, err
}

// UnansweredQuestionIDs lists the locale's questions that have no attempt.
func (s *SQLiteStore) UnansweredQuestionIDs(ctx context.Context, locale string) ([]int64, error) {
	return s.queryIDs(ctx, `
		SELECT q.id FROM questions q
		LEFT JOIN question_attempts a ON a.question_id = q.id
		WHERE q.locale = ? AND a.id IS NULL
		ORDER BY q.id
	`, locale)
}

func (s *SQLiteStore) CountUnanswered(ctx context.Context, locale string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM questions q
		WHERE q.locale = ? AND NOT EXISTS (SELECT 1 FROM question_attempts a WHERE a.question_id = q.id)
	`, locale).Scan(&n)
	return n, err
}

// AttemptTotals counts the attempts on the locale's questions. Attempts on
// questions no longer in the catalog are not counted.
func (s *SQLiteStore) AttemptTotals(ctx context.Context, locale string) (AttemptTotals, error) {
	return s.attemptTotals(ctx, `
		SELECT COUNT(*), COALESCE(SUM(a.is_correct), 0)
		FROM question_attempts a
		JOIN questions q ON q.id = a.question_id
		WHERE q.locale = ?
	`, locale)
}

// AttemptTotalsSince is AttemptTotals restricted to attempts at or after since.
func (s *SQLiteStore) AttemptTotalsSince(ctx context.Context, locale string, since time.Time) (AttemptTotals, error) {
	return s.attemptTotals(ctx, `
		SELECT COUNT(*), COALESCE(SUM(a.is_correct), 0)
		FROM question_attempts a
		JOIN questions q ON q.id = a.question_id
		WHERE q.locale = ? AND a.answered_at >= ?
	`, locale, since.UnixMilli())
}

// CategoryAttemptTotals groups attempt counts by the category of the
// attempted question. Attempts on questions no longer in the catalog are
// not attributed to any category.
func (s *SQLiteStore) CategoryAttemptTotals(ctx context.Context, locale string) (map[string]AttemptTotals, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT q.category_slug, COUNT(*), COALESCE(SUM(a.is_correct), 0)
		FROM question_attempts a
		JOIN questions q ON q.id = a.question_id
		WHERE q.locale = ?
		GROUP BY q.category_slug
	`, locale)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]AttemptTotals)
	for rows.Next() {
		var slug string
		var t AttemptTotals
		if err := rows.Scan(&slug, &t.Answered, &t.Correct); err != nil {
			return nil, err
		}
		out[slug] = t
	}
	return out, rows.Err()
}

func (s *SQLiteStore) attemptTotals(ctx context.Context, query string, args ...any) (AttemptTotals, error) {
	var t AttemptTotals
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&t.Answered, &t.Correct)
	return t, err
}

func scanAttempt(rows *sql.Rows) (attempt.Attempt, error) {
	var (
		a          attempt.Attempt
		answeredAt int64
		mode       string
		sessionID  sql.NullString
	)
	if err := rows.Scan(&a.ID, &a.QuestionID, &answeredAt, &a.Correct, &mode, &sessionID); err != nil {
		return a, err
	}
	a.AnsweredAt = time.UnixMilli(answeredAt)
	a.Mode = attempt.Mode(mode)
	if sessionID.Valid {
		a.SessionID = &sessionID.String
	}
	return a, nil
}
