package service

import (
	"context"
	"time"

	"github.com/remaimber-it/trivia/internal/domain/attempt"
	"github.com/remaimber-it/trivia/internal/domain/category"
	"github.com/remaimber-it/trivia/internal/domain/question"
	"github.com/remaimber-it/trivia/internal/domain/session"
	"github.com/remaimber-it/trivia/internal/domain/streak"
	"github.com/remaimber-it/trivia/internal/store"
)

// Catalog is the read side of the content catalog.
type Catalog interface {
	ListCategories(ctx context.Context, locale string) ([]*category.Category, error)
	GetCategory(ctx context.Context, locale, slug string) (*category.Category, error)
	QuestionsByCategory(ctx context.Context, locale, slug string) ([]question.Question, error)
	QuestionIDsByCategory(ctx context.Context, locale, slug string) ([]int64, error)
	QuestionIDsByLocale(ctx context.Context, locale string) (map[int64]string, error)
	QuestionsByIDs(ctx context.Context, ids []int64) ([]question.Question, error)
	ExistingQuestionIDs(ctx context.Context, ids []int64) ([]int64, error)
	QuestionsShownOn(ctx context.Context, locale, date string) ([]question.Question, error)
	CountShownOn(ctx context.Context, locale, date string) (int, error)
}

type AttemptStore interface {
	SaveAttempt(ctx context.Context, a *attempt.Attempt) error
	AttemptHistories(ctx context.Context, questionIDs []int64) (map[int64][]attempt.Attempt, error)
	LocaleAttemptHistories(ctx context.Context, locale string) (map[int64][]attempt.Attempt, error)
	UnansweredQuestionIDs(ctx context.Context, locale string) ([]int64, error)
	CountUnanswered(ctx context.Context, locale string) (int, error)
	AttemptTotals(ctx context.Context, locale string) (store.AttemptTotals, error)
	AttemptTotalsSince(ctx context.Context, locale string, since time.Time) (store.AttemptTotals, error)
	CategoryAttemptTotals(ctx context.Context, locale string) (map[string]store.AttemptTotals, error)
}

type DailyStore interface {
	StartDailyProgress(ctx context.Context, date string, totalQuestions int) error
	UpsertDailyProgress(ctx context.Context, p streak.DailyProgress) error
	GetDailyProgress(ctx context.Context, date string) (*streak.DailyProgress, error)
	CompletedDates(ctx context.Context) ([]string, error)
	RaiseBestStreak(ctx context.Context, n int) error
	GetBestStreak(ctx context.Context) (int, error)
}

type SessionStore interface {
	SaveSession(ctx context.Context, ts *session.TriviaSession) error
	GetSession(ctx context.Context, id string) (*session.TriviaSession, error)
	ListSessions(ctx context.Context, limit int) ([]*session.TriviaSession, error)
	CountSessions(ctx context.Context) (int, error)
	CountSessionsSince(ctx context.Context, since time.Time) (int, error)
}

// Store is everything the engine needs from persistence.
// *store.SQLiteStore satisfies it.
type Store interface {
	Catalog
	AttemptStore
	DailyStore
	SessionStore
}
