package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/remaimber-it/trivia/internal/catalog"
	"github.com/remaimber-it/trivia/internal/domain/category"
	"github.com/remaimber-it/trivia/internal/domain/question"
	"github.com/remaimber-it/trivia/internal/logger"
)

type memWriter struct {
	categories []*category.Category
	questions  []question.Question
}

func (m *memWriter) SaveCategory(_ context.Context, cat *category.Category) error {
	m.categories = append(m.categories, cat)
	return nil
}

func (m *memWriter) SaveQuestion(_ context.Context, q question.Question) error {
	m.questions = append(m.questions, q)
	return nil
}

const sample = `{
  "version": "1.0",
  "locale": "de",
  "categories": [
    {
      "slug": "space",
      "name": "Weltraum",
      "icon": "rocket",
      "color": "#000080",
      "questions": [
        {"id": 1, "fact_id": 10, "type": "multiple_choice", "text": "Größter Planet?", "correct_answer": "Jupiter", "wrong_answers": ["Mars", "Venus", "Erde"]},
        {"id": 2, "fact_id": 11, "type": "true_false", "text": "Die Sonne ist ein Stern", "correct_answer": "True"},
        {"id": 3, "fact_id": 12, "type": "essay", "text": "Erkläre Gravitation", "correct_answer": "..."}
      ]
    },
    {"name": "Ohne Slug", "questions": [{"id": 4}]}
  ]
}`

func TestImport(t *testing.T) {
	data, err := catalog.Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	w := &memWriter{}
	result, err := catalog.Import(context.Background(), w, data, "en", logger.Nop())
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if result.CategoriesImported != 1 {
		t.Errorf("expected 1 category, got %d", result.CategoriesImported)
	}
	if result.QuestionsImported != 2 {
		t.Errorf("expected 2 questions, got %d", result.QuestionsImported)
	}
	if result.QuestionsSkipped != 2 {
		t.Errorf("expected 2 skipped questions, got %d", result.QuestionsSkipped)
	}
	if w.categories[0].Locale != "de" {
		t.Errorf("expected locale 'de', got %q", w.categories[0].Locale)
	}
	for _, q := range w.questions {
		if q.CategorySlug != "space" || q.Locale != "de" {
			t.Errorf("expected question in space/de, got %s/%s", q.CategorySlug, q.Locale)
		}
	}
}

func TestImport_DefaultLocale(t *testing.T) {
	data := &catalog.Data{Categories: []catalog.Category{{Slug: "history"}}}

	w := &memWriter{}
	if _, err := catalog.Import(context.Background(), w, data, "en", logger.Nop()); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(w.categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(w.categories))
	}
	if w.categories[0].Locale != "en" {
		t.Errorf("expected locale 'en', got %q", w.categories[0].Locale)
	}
	if w.categories[0].Name != "history" {
		t.Errorf("expected name to default to slug, got %q", w.categories[0].Name)
	}
}

func TestImport_CancelledContext(t *testing.T) {
	data := &catalog.Data{Categories: []catalog.Category{{Slug: "history"}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := catalog.Import(ctx, &memWriter{}, data, "en", logger.Nop()); err == nil {
		t.Error("expected an error for a cancelled context")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	data, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(data.Categories) != 2 {
		t.Errorf("expected 2 categories, got %d", len(data.Categories))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := catalog.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
