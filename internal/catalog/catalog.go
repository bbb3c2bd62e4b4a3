// Package catalog loads content catalog files into the store.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/remaimber-it/trivia/internal/domain/category"
	"github.com/remaimber-it/trivia/internal/domain/question"
	"github.com/remaimber-it/trivia/internal/logger"
)

// ── File format ─────────────────────────────────────────────────────────────

type Question struct {
	ID            int64    `json:"id" example:"55"`
	FactID        int64    `json:"fact_id" example:"12"`
	Type          string   `json:"type" example:"multiple_choice"`
	Text          string   `json:"text" example:"Which planet is largest?"`
	CorrectAnswer string   `json:"correct_answer" example:"Jupiter"`
	WrongAnswers  []string `json:"wrong_answers,omitempty"`
	Explanation   *string  `json:"explanation,omitempty"`
}

type Category struct {
	Slug      string     `json:"slug" example:"space"`
	Name      string     `json:"name" example:"Space"`
	Icon      string     `json:"icon" example:"rocket"`
	Color     string     `json:"color" example:"#1E3A8A"`
	Questions []Question `json:"questions"`
}

type Data struct {
	Version    string     `json:"version" example:"1.0"`
	Locale     string     `json:"locale" example:"en"`
	Categories []Category `json:"categories"`
}

type Result struct {
	CategoriesImported int `json:"categories_imported"`
	QuestionsImported  int `json:"questions_imported"`
	QuestionsSkipped   int `json:"questions_skipped"`
}

// Writer is the store side of an import.
type Writer interface {
	SaveCategory(ctx context.Context, cat *category.Category) error
	SaveQuestion(ctx context.Context, q question.Question) error
}

// ── Loading ─────────────────────────────────────────────────────────────────

func Decode(r io.Reader) (*Data, error) {
	var data Data
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &data, nil
}

func Load(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// ── Import ──────────────────────────────────────────────────────────────────

// Import upserts every category and question of data. Rows that fail
// validation or storage are logged and skipped; only a cancelled context
// aborts the import. defaultLocale applies when data has no locale.
func Import(ctx context.Context, w Writer, data *Data, defaultLocale string, log *logger.Logger) (Result, error) {
	result := Result{}
	locale := data.Locale
	if locale == "" {
		locale = defaultLocale
	}

	for _, cat := range data.Categories {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if cat.Slug == "" {
			log.Warn("skipping category without slug", "name", cat.Name)
			result.QuestionsSkipped += len(cat.Questions)
			continue
		}
		name := cat.Name
		if name == "" {
			name = cat.Slug
		}

		if err := w.SaveCategory(ctx, category.New(cat.Slug, name, cat.Icon, cat.Color, locale)); err != nil {
			log.Error("failed to save category", "slug", cat.Slug, "error", err)
			result.QuestionsSkipped += len(cat.Questions)
			continue
		}
		result.CategoriesImported++

		for _, in := range cat.Questions {
			q := question.Question{
				ID:            in.ID,
				FactID:        in.FactID,
				CategorySlug:  cat.Slug,
				Locale:        locale,
				Text:          in.Text,
				Type:          question.Type(in.Type),
				CorrectAnswer: in.CorrectAnswer,
				WrongAnswers:  in.WrongAnswers,
				Explanation:   in.Explanation,
			}
			if q.Type == question.TypeTrueFalse {
				q.WrongAnswers = nil
			}
			if err := q.Validate(); err != nil {
				log.Warn("skipping invalid question", "id", in.ID, "error", err)
				result.QuestionsSkipped++
				continue
			}
			if err := w.SaveQuestion(ctx, q); err != nil {
				log.Error("failed to save question", "id", in.ID, "error", err)
				result.QuestionsSkipped++
				continue
			}
			result.QuestionsImported++
		}
	}

	log.Info("catalog imported",
		"locale", locale,
		"categories", result.CategoriesImported,
		"questions", result.QuestionsImported,
		"skipped", result.QuestionsSkipped,
	)
	return result, nil
}
