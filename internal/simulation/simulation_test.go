package simulation_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/remaimber-it/trivia/internal/domain/category"
	"github.com/remaimber-it/trivia/internal/domain/question"
	"github.com/remaimber-it/trivia/internal/logger"
	"github.com/remaimber-it/trivia/internal/simulation"
	"github.com/remaimber-it/trivia/internal/store"
)

func seededStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "sim.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	for c, slug := range []string{"space", "history"} {
		if err := s.SaveCategory(ctx, category.New(slug, slug, "", "", "en")); err != nil {
			t.Fatalf("failed to save category: %v", err)
		}
		for i := 1; i <= 15; i++ {
			id := int64(c*100 + i)
			q := question.Question{
				ID: id, FactID: id, CategorySlug: slug, Locale: "en",
				Text: "Question?", Type: question.TypeMultipleChoice,
				CorrectAnswer: "right", WrongAnswers: []string{"a", "b", "c"},
			}
			if err := s.SaveQuestion(ctx, q); err != nil {
				t.Fatalf("failed to save question: %v", err)
			}
		}
	}
	return s
}

func TestRun_PerfectPlayerKeepsStreak(t *testing.T) {
	s := seededStore(t)

	report, err := simulation.Run(context.Background(), s, logger.Nop(), simulation.Config{
		Days:        5,
		FactsPerDay: 4,
		GamesPerDay: 2,
		Skill:       1,
		Workers:     2,
		Locale:      "en",
		Start:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Seed:        7,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if report.CurrentStreak != 5 || report.BestStreak != 5 {
		t.Errorf("expected streak 5/5, got %d/%d", report.CurrentStreak, report.BestStreak)
	}
	if report.Answers != report.Correct {
		t.Errorf("expected every answer correct, got %d/%d", report.Correct, report.Answers)
	}
	if report.Overall.TotalAnswered != report.Answers {
		t.Errorf("expected %d recorded attempts, got %d", report.Answers, report.Overall.TotalAnswered)
	}
	if report.Overall.TestsTaken != report.Games {
		t.Errorf("expected %d sessions, got %d", report.Games, report.Overall.TestsTaken)
	}
}

func TestRun_SkippedDayBreaksStreak(t *testing.T) {
	s := seededStore(t)

	report, err := simulation.Run(context.Background(), s, logger.Nop(), simulation.Config{
		Days:        5,
		FactsPerDay: 2,
		SkipEvery:   3,
		Skill:       0.5,
		Workers:     1,
		Locale:      "en",
		Start:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Seed:        3,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.CurrentStreak != 2 || report.BestStreak != 2 {
		t.Errorf("expected streak 2/2, got %d/%d", report.CurrentStreak, report.BestStreak)
	}
}

func TestRun_RejectsZeroDays(t *testing.T) {
	s := seededStore(t)

	if _, err := simulation.Run(context.Background(), s, logger.Nop(), simulation.Config{}); err == nil {
		t.Error("expected an error for zero days")
	}
}
