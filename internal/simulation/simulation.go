// simulation/simulation.go
package simulation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/remaimber-it/trivia/internal/domain/attempt"
	"github.com/remaimber-it/trivia/internal/domain/question"
	"github.com/remaimber-it/trivia/internal/domain/stats"
	"github.com/remaimber-it/trivia/internal/domain/streak"
	"github.com/remaimber-it/trivia/internal/logger"
	"github.com/remaimber-it/trivia/internal/service"
	"github.com/remaimber-it/trivia/internal/worker"
)

// Store is what a simulated player needs: the engine store plus the
// content-side hook that marks facts as shown.
type Store interface {
	service.Store
	MarkFactShown(ctx context.Context, factID int64, date string) error
}

// Config describes a simulated learner.
type Config struct {
	Days        int       // calendar days to play
	FactsPerDay int       // facts "read" each day, feeding the daily quiz
	GamesPerDay int       // mixed and category games per day, besides the daily one
	SkipEvery   int       // skip the daily quiz every n-th day; 0 never skips
	Skill       float64   // probability of answering correctly
	Workers     int       // games played concurrently
	Locale      string
	Start       time.Time // first simulated day
	Seed        int64
}

type Report struct {
	Days          int
	Games         int
	EmptyPools    int
	Answers       int
	Correct       int
	CurrentStreak int
	BestStreak    int
	Overall       stats.Overall
}

type gameOutcome struct {
	answers int
	correct int
	empty   bool
	err     error
}

// simClock is the engine clock, moved forward one day at a time.
type simClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *simClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *simClock) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Run plays cfg.Days days against st and reports the resulting progress.
// Non-daily games of a day run concurrently on a worker pool.
func Run(ctx context.Context, st Store, log *logger.Logger, cfg Config) (Report, error) {
	if cfg.Days <= 0 {
		return Report{}, fmt.Errorf("simulation: days must be positive")
	}
	if cfg.Start.IsZero() {
		cfg.Start = time.Now()
	}
	clk := &simClock{now: cfg.Start}
	rng := rand.New(rand.NewSource(cfg.Seed))
	engine := service.NewEngine(st, log, service.Options{
		Location: time.UTC,
		Now:      clk.Now,
		Rand:     rand.New(rand.NewSource(rng.Int63())),
	})

	facts, err := factIDs(ctx, st, cfg.Locale)
	if err != nil {
		return Report{}, err
	}
	categories, err := st.ListCategories(ctx, cfg.Locale)
	if err != nil {
		return Report{}, fmt.Errorf("list categories: %w", err)
	}

	report := Report{Days: cfg.Days}
	add := func(o gameOutcome) error {
		if o.err != nil {
			return o.err
		}
		if o.empty {
			report.EmptyPools++
			return nil
		}
		report.Games++
		report.Answers += o.answers
		report.Correct += o.correct
		return nil
	}

	for d := 0; d < cfg.Days; d++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		day := cfg.Start.AddDate(0, 0, d)
		clk.set(day)
		date := streak.DateOf(day, time.UTC)

		for i := 0; i < cfg.FactsPerDay && len(facts) > 0; i++ {
			if err := st.MarkFactShown(ctx, facts[rng.Intn(len(facts))], date); err != nil {
				return report, fmt.Errorf("mark fact shown: %w", err)
			}
		}

		if cfg.SkipEvery == 0 || (d+1)%cfg.SkipEvery != 0 {
			if err := add(play(ctx, engine, attempt.ModeDaily, cfg.Locale, nil, cfg.Skill, rng.Int63())); err != nil {
				return report, err
			}
		}

		ids := make([]string, cfg.GamesPerDay)
		jobs := make([]worker.Job[gameOutcome], cfg.GamesPerDay)
		for g := range jobs {
			mode := attempt.ModeMixed
			var slug *string
			if g%2 == 1 && len(categories) > 0 {
				mode = attempt.ModeCategory
				s := categories[rng.Intn(len(categories))].Slug
				slug = &s
			}
			seed := rng.Int63()
			ids[g] = fmt.Sprintf("%s-%d", date, g)
			jobs[g] = func() gameOutcome {
				return play(ctx, engine, mode, cfg.Locale, slug, cfg.Skill, seed)
			}
		}
		for _, r := range worker.Run(worker.NewPool[gameOutcome](cfg.Workers, cfg.GamesPerDay), ids, jobs) {
			if err := add(r.Output); err != nil {
				return report, fmt.Errorf("game %s: %w", r.JobID, err)
			}
		}

		log.Debug("simulated day", "date", date, "games", report.Games)
	}

	report.Overall = engine.Stats.Overall(ctx, cfg.Locale)
	report.CurrentStreak = report.Overall.CurrentStreak
	report.BestStreak = report.Overall.BestStreak
	return report, nil
}

// play runs one game from start to completion.
func play(ctx context.Context, engine *service.Engine, mode attempt.Mode, locale string, slug *string, skill float64, seed int64) gameOutcome {
	game, err := engine.Games.Start(ctx, mode, locale, slug)
	if errors.Is(err, service.ErrEmptyPool) {
		return gameOutcome{empty: true}
	}
	if err != nil {
		return gameOutcome{err: err}
	}

	player := rand.New(rand.NewSource(seed))
	out := gameOutcome{}
	for _, q := range game.Questions {
		options, err := game.Answers(q.ID)
		if err != nil {
			return gameOutcome{err: err}
		}
		correct, err := engine.Games.Answer(ctx, game.ID, q.ID, choose(q, options, player.Float64() < skill))
		if err != nil {
			return gameOutcome{err: err}
		}
		out.answers++
		if correct {
			out.correct++
		}
	}

	if _, err := engine.Games.Complete(ctx, game.ID); err != nil {
		return gameOutcome{err: err}
	}
	return out
}

func choose(q question.Question, options []string, wantCorrect bool) string {
	for _, o := range options {
		if q.IsCorrect(o) == wantCorrect {
			return o
		}
	}
	return options[0]
}

func factIDs(ctx context.Context, st Store, locale string) ([]int64, error) {
	byID, err := st.QuestionIDsByLocale(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("question ids: %w", err)
	}
	ids := make([]int64, 0, len(byID))
	for qid := range byID {
		ids = append(ids, qid)
	}
	qs, err := st.QuestionsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	seen := make(map[int64]bool)
	facts := make([]int64, 0, len(qs))
	for _, q := range qs {
		if !seen[q.FactID] {
			seen[q.FactID] = true
			facts = append(facts, q.FactID)
		}
	}
	return facts, nil
}
