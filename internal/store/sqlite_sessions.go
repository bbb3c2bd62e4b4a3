package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/remaimber-it/trivia/internal/domain/attempt"
	"github.com/remaimber-it/trivia/internal/domain/category"
	"github.com/remaimber-it/trivia/internal/domain/session"
)

// ============================================================================
// Trivia sessions
// ============================================================================

const sessionSelect = `
	SELECT s.id, s.mode, s.category_slug, s.locale, s.total_questions, s.correct_answers,
		COALESCE(s.elapsed_ns, s.elapsed_ms * 1000000), s.best_streak, s.completed_at, s.transcript,
		c.name, c.icon, c.color
	FROM trivia_sessions s
	LEFT JOIN categories c ON c.slug = s.category_slug AND c.locale = s.locale
`

// SaveSession inserts a completed session. Sessions are never updated.
func (s *SQLiteStore) SaveSession(ctx context.Context, ts *session.TriviaSession) error {
	blob, err := session.EncodeTranscript(ts.Transcript)
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO trivia_sessions (id, mode, category_slug, locale, total_questions, correct_answers, elapsed_ms, elapsed_ns, best_streak, completed_at, transcript)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, ts.ID, string(ts.Mode), ts.CategorySlug, ts.Locale, ts.TotalQuestions, ts.CorrectAnswers,
		ts.Elapsed.Milliseconds(), int64(ts.Elapsed), ts.BestStreak, ts.CompletedAt.UnixMilli(), blob)
	return err
}

func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*session.TriviaSession, error) {
	rows, err := s.db.QueryContext(ctx, sessionSelect+" WHERE s.id = ?", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	return scanSession(rows)
}

// ListSessions returns sessions most recent first. limit <= 0 returns all.
func (s *SQLiteStore) ListSessions(ctx context.Context, limit int) ([]*session.TriviaSession, error) {
	query := sessionSelect + " ORDER BY s.completed_at DESC, s.rowid DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []*session.TriviaSession{}
	for rows.Next() {
		ts, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, ts)
	}
	return sessions, rows.Err()
}

func (s *SQLiteStore) CountSessions(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM trivia_sessions").Scan(&n)
	return n, err
}

// CountSessionsSince counts sessions completed at or after since.
func (s *SQLiteStore) CountSessionsSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM trivia_sessions WHERE completed_at >= ?", since.UnixMilli(),
	).Scan(&n)
	return n, err
}

// scanSession decodes one row of sessionSelect. A transcript that cannot be
// parsed is reported through TranscriptCorrupt, not as an error.
func scanSession(rows *sql.Rows) (*session.TriviaSession, error) {
	var (
		ts           session.TriviaSession
		mode         string
		categorySlug sql.NullString
		elapsedNs    int64
		completedAt  int64
		blob         []byte
		catName      sql.NullString
		catIcon      sql.NullString
		catColor     sql.NullString
	)
	if err := rows.Scan(&ts.ID, &mode, &categorySlug, &ts.Locale, &ts.TotalQuestions, &ts.CorrectAnswers,
		&elapsedNs, &ts.BestStreak, &completedAt, &blob, &catName, &catIcon, &catColor); err != nil {
		return nil, err
	}

	ts.Mode = attempt.Mode(mode)
	ts.Elapsed = time.Duration(elapsedNs)
	ts.CompletedAt = time.UnixMilli(completedAt)
	if categorySlug.Valid {
		slug := categorySlug.String
		ts.CategorySlug = &slug
		if catName.Valid {
			ts.Category = category.New(slug, catName.String, catIcon.String, catColor.String, ts.Locale)
		}
	}

	transcript, ok := session.DecodeTranscript(blob)
	ts.Transcript = transcript
	ts.TranscriptCorrupt = !ok
	return &ts, nil
}
