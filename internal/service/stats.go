package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/remaimber-it/trivia/internal/domain/attempt"
	"github.com/remaimber-it/trivia/internal/domain/category"
	"github.com/remaimber-it/trivia/internal/domain/stats"
	"github.com/remaimber-it/trivia/internal/logger"
	"github.com/remaimber-it/trivia/internal/store"
)

// StatsAggregator builds the summary screens. It is a display path: storage
// errors are logged and the affected figure falls back to zero.
type StatsAggregator struct {
	catalog  Catalog
	attempts AttemptStore
	sessions SessionStore
	streaks  *StreakTracker
	policy   attempt.Policy
	size     int
	clock    clock
	log      *logger.Logger
}

// Overall computes the statistics screen summary for locale. Attempt
// figures and mastery only count questions of that locale; session counts
// cover every locale.
func (a *StatsAggregator) Overall(ctx context.Context, locale string) stats.Overall {
	var (
		out         stats.Overall
		totals      store.AttemptTotals
		sessions    int
		sessionsErr error
	)
	now := a.clock.Now()
	dayStart := stats.DayStart(now)

	// Each task degrades on its own, so none of them fails the group.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := a.attempts.AttemptTotals(gctx, locale)
		a.degrade("attempt totals", err)
		totals = t
		return nil
	})
	g.Go(func() error {
		n, err := a.streaks.DailyStreak(gctx)
		a.degrade("daily streak", err)
		out.CurrentStreak = n
		return nil
	})
	g.Go(func() error {
		n, err := a.streaks.BestStreak(gctx)
		a.degrade("best streak", err)
		out.BestStreak = n
		return nil
	})
	g.Go(func() error {
		mastered, today, err := a.mastery(gctx, locale, dayStart.UnixNano())
		a.degrade("mastery", err)
		out.TotalMastered, out.MasteredToday = mastered, today
		return nil
	})
	g.Go(func() error {
		sessions, sessionsErr = a.sessions.CountSessions(gctx)
		a.degrade("session count", sessionsErr)
		return nil
	})
	g.Go(func() error {
		n, err := a.sessions.CountSessionsSince(gctx, stats.WeekStart(now))
		a.degrade("sessions this week", err)
		out.TestsThisWeek = n
		return nil
	})
	g.Go(func() error {
		t, err := a.attempts.AttemptTotalsSince(gctx, locale, dayStart)
		a.degrade("attempts today", err)
		out.CorrectToday = t.Correct
		return nil
	})
	_ = g.Wait()

	out.TotalAnswered = totals.Answered
	out.TotalCorrect = totals.Correct
	if sessionsErr == nil {
		out.TestsTaken = sessions
	} else {
		out.TestsTaken = stats.EstimateTestsTaken(totals.Answered, a.size)
	}
	return out
}

// mastery counts mastered questions of the locale and those among them
// whose latest attempt is at or after todayNanos.
func (a *StatsAggregator) mastery(ctx context.Context, locale string, todayNanos int64) (total, today int, err error) {
	histories, err := a.attempts.LocaleAttemptHistories(ctx, locale)
	if err != nil {
		return 0, 0, err
	}
	for _, h := range histories {
		if !a.policy(h) {
			continue
		}
		total++
		if h[len(h)-1].AnsweredAt.UnixNano() >= todayNanos {
			today++
		}
	}
	return total, today, nil
}

// CategoriesWithProgress lists every category of the locale with its
// progress. A failed catalog read yields an empty list.
func (a *StatsAggregator) CategoriesWithProgress(ctx context.Context, locale string) []category.Progress {
	var (
		categories []*category.Category
		byID       map[int64]string
		histories  map[int64][]attempt.Attempt
		totals     map[string]store.AttemptTotals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = a.catalog.ListCategories(gctx, locale)
		return err
	})
	g.Go(func() error {
		var err error
		byID, err = a.catalog.QuestionIDsByLocale(gctx, locale)
		return err
	})
	g.Go(func() error {
		var err error
		histories, err = a.attempts.LocaleAttemptHistories(gctx, locale)
		return err
	})
	g.Go(func() error {
		t, err := a.attempts.CategoryAttemptTotals(gctx, locale)
		a.degrade("category attempt totals", err)
		totals = t
		return nil
	})
	if err := g.Wait(); err != nil {
		a.degrade("categories with progress", err)
		return []category.Progress{}
	}

	totalBySlug := make(map[string]int)
	masteredBySlug := make(map[string]int)
	for qid, slug := range byID {
		totalBySlug[slug]++
		if a.policy(histories[qid]) {
			masteredBySlug[slug]++
		}
	}

	out := make([]category.Progress, 0, len(categories))
	for _, c := range categories {
		t := totals[c.Slug]
		out = append(out, category.Progress{
			Category: *c,
			Mastered: min(masteredBySlug[c.Slug], totalBySlug[c.Slug]),
			Total:    totalBySlug[c.Slug],
			Answered: t.Answered,
			Correct:  t.Correct,
		})
	}
	return out
}

// CategoryProgress returns the progress of one category. Unknown slugs
// return store.ErrNotFound (wrapped).
func (a *StatsAggregator) CategoryProgress(ctx context.Context, locale, slug string) (category.Progress, error) {
	c, err := a.catalog.GetCategory(ctx, locale, slug)
	if err != nil {
		return category.Progress{}, fmt.Errorf("get category: %w", err)
	}
	ids, err := a.catalog.QuestionIDsByCategory(ctx, locale, slug)
	if err != nil {
		return category.Progress{}, fmt.Errorf("category question ids: %w", err)
	}
	histories, err := a.attempts.AttemptHistories(ctx, ids)
	if err != nil {
		return category.Progress{}, fmt.Errorf("attempt histories: %w", err)
	}

	p := category.Progress{
		Category: *c,
		Mastered: countMastered(ids, histories, a.policy),
		Total:    len(ids),
	}
	for _, h := range histories {
		for _, at := range h {
			p.Answered++
			if at.Correct {
				p.Correct++
			}
		}
	}
	return p, nil
}

func (a *StatsAggregator) degrade(what string, err error) {
	if err != nil {
		a.log.Warn("stats degraded to zero", "part", what, "error", err)
	}
}
