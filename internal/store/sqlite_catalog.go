package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/remaimber-it/trivia/internal/domain/category"
	"github.com/remaimber-it/trivia/internal/domain/question"
)

// The catalog tables belong to the content side of the app. The engine
// only reads them; the writers below serve catalog import and the
// "fact shown" hook.

// ============================================================================
// Categories
// ============================================================================

func (s *SQLiteStore) SaveCategory(ctx context.Context, cat *category.Category) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (slug, locale, name, icon, color) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(slug, locale) DO UPDATE SET name = excluded.name, icon = excluded.icon, color = excluded.color
	`, cat.Slug, cat.Locale, cat.Name, cat.Icon, cat.Color)
	return err
}

func (s *SQLiteStore) GetCategory(ctx context.Context, locale, slug string) (*category.Category, error) {
	var cat category.Category
	err := s.db.QueryRowContext(ctx,
		"SELECT slug, locale, name, icon, color FROM categories WHERE slug = ? AND locale = ?", slug, locale,
	).Scan(&cat.Slug, &cat.Locale, &cat.Name, &cat.Icon, &cat.Color)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *SQLiteStore) ListCategories(ctx context.Context, locale string) ([]*category.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT slug, locale, name, icon, color FROM categories WHERE locale = ? ORDER BY name", locale,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*category.Category
	for rows.Next() {
		var cat category.Category
		if err := rows.Scan(&cat.Slug, &cat.Locale, &cat.Name, &cat.Icon, &cat.Color); err != nil {
			return nil, err
		}
		categories = append(categories, &cat)
	}
	return categories, rows.Err()
}

// ============================================================================
// Questions
// ============================================================================

const questionColumns = "q.id, q.fact_id, q.category_slug, q.locale, q.text, q.type, q.correct_answer, q.wrong_answers, q.explanation"

func (s *SQLiteStore) SaveQuestion(ctx context.Context, q question.Question) error {
	wrong := q.WrongAnswers
	if wrong == nil {
		wrong = []string{}
	}
	wrongJSON, err := json.Marshal(wrong)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO questions (id, fact_id, category_slug, locale, text, type, correct_answer, wrong_answers, explanation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			fact_id = excluded.fact_id,
			category_slug = excluded.category_slug,
			locale = excluded.locale,
			text = excluded.text,
			type = excluded.type,
			correct_answer = excluded.correct_answer,
			wrong_answers = excluded.wrong_answers,
			explanation = excluded.explanation
	`, q.ID, q.FactID, q.CategorySlug, q.Locale, q.Text, string(q.Type), q.CorrectAnswer, string(wrongJSON), q.Explanation)
	return err
}

func (s *SQLiteStore) DeleteQuestion(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM questions WHERE id = ?", id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) QuestionsByCategory(ctx context.Context, locale, slug string) ([]question.Question, error) {
	return s.queryQuestions(ctx,
		"SELECT "+questionColumns+" FROM questions q WHERE q.locale = ? AND q.category_slug = ? ORDER BY q.id",
		locale, slug,
	)
}

func (s *SQLiteStore) QuestionIDsByCategory(ctx context.Context, locale, slug string) ([]int64, error) {
	return s.queryIDs(ctx,
		"SELECT id FROM questions WHERE locale = ? AND category_slug = ? ORDER BY id", locale, slug,
	)
}

// QuestionIDsByLocale maps every question id of the locale to its category.
func (s *SQLiteStore) QuestionIDsByLocale(ctx context.Context, locale string) (map[int64]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, category_slug FROM questions WHERE locale = ?", locale)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]string)
	for rows.Next() {
		var id int64
		var slug string
		if err := rows.Scan(&id, &slug); err != nil {
			return nil, err
		}
		out[id] = slug
	}
	return out, rows.Err()
}

func (s *SQLiteStore) QuestionsByIDs(ctx context.Context, ids []int64) ([]question.Question, error) {
	out := []question.Question{}
	for _, chunk := range chunkIDs(ids) {
		qs, err := s.queryQuestions(ctx,
			"SELECT "+questionColumns+" FROM questions q WHERE q.id IN ("+placeholders(len(chunk))+") ORDER BY q.id",
			int64Args(chunk)...,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, qs...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ExistingQuestionIDs returns the subset of ids still present in the catalog.
func (s *SQLiteStore) ExistingQuestionIDs(ctx context.Context, ids []int64) ([]int64, error) {
	out := []int64{}
	for _, chunk := range chunkIDs(ids) {
		found, err := s.queryIDs(ctx,
			"SELECT id FROM questions WHERE id IN ("+placeholders(len(chunk))+")", int64Args(chunk)...,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

// ============================================================================
// Fact views
// ============================================================================

// MarkFactShown records that the content side displayed a fact on date.
func (s *SQLiteStore) MarkFactShown(ctx context.Context, factID int64, date string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO fact_views (fact_id, shown_date) VALUES (?, ?) ON CONFLICT DO NOTHING", factID, date,
	)
	return err
}

func (s *SQLiteStore) QuestionsShownOn(ctx context.Context, locale, date string) ([]question.Question, error) {
	return s.queryQuestions(ctx, `
		SELECT `+questionColumns+` FROM questions q
		JOIN fact_views v ON v.fact_id = q.fact_id AND v.shown_date = ?
		WHERE q.locale = ?
		ORDER BY q.id
	`, date, locale)
}

func (s *SQLiteStore) CountShownOn(ctx context.Context, locale, date string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM questions q
		JOIN fact_views v ON v.fact_id = q.fact_id AND v.shown_date = ?
		WHERE q.locale = ?
	`, date, locale).Scan(&n)
	return n, err
}

// ============================================================================
// helpers
// ============================================================================

func (s *SQLiteStore) queryQuestions(ctx context.Context, query string, args ...any) ([]question.Question, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []question.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func scanQuestion(rows *sql.Rows) (question.Question, error) {
	var (
		q           question.Question
		qType       string
		wrongJSON   string
		explanation sql.NullString
	)
	if err := rows.Scan(&q.ID, &q.FactID, &q.CategorySlug, &q.Locale, &q.Text, &qType, &q.CorrectAnswer, &wrongJSON, &explanation); err != nil {
		return q, err
	}
	q.Type = question.Type(qType)
	if err := json.Unmarshal([]byte(wrongJSON), &q.WrongAnswers); err != nil {
		return q, fmt.Errorf("question %d: wrong answers: %w", q.ID, err)
	}
	if explanation.Valid {
		q.Explanation = &explanation.String
	}
	return q, nil
}

func (s *SQLiteStore) queryIDs(ctx context.Context, query string, args ...any) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
