package service

import (
	"math/rand"
	"time"

	"github.com/remaimber-it/trivia/internal/domain/attempt"
	"github.com/remaimber-it/trivia/internal/domain/stats"
	"github.com/remaimber-it/trivia/internal/domain/streak"
	"github.com/remaimber-it/trivia/internal/logger"
)

// Options tunes the engine. Zero values select the defaults.
type Options struct {
	SessionSize int              // questions per quiz, default 10
	Policy      attempt.Policy   // mastery policy, default attempt.LatestCorrect
	Location    *time.Location   // calendar of "today", default time.Local
	Now         func() time.Time // default time.Now
	Rand        *rand.Rand       // default seeded from the clock
}

// Engine wires the progress components over one store.
type Engine struct {
	Selector *Selector
	Recorder *Recorder
	Streaks  *StreakTracker
	Sessions *SessionService
	Stats    *StatsAggregator
	Games    *GameService
}

func NewEngine(s Store, log *logger.Logger, opts Options) *Engine {
	if opts.SessionSize <= 0 {
		opts.SessionSize = stats.DefaultSessionSize
	}
	if opts.Policy == nil {
		opts.Policy = attempt.LatestCorrect
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = logger.Nop()
	}
	clk := clock{now: opts.Now, loc: opts.Location}

	selector := &Selector{
		catalog:  s,
		attempts: s,
		policy:   opts.Policy,
		size:     opts.SessionSize,
		clock:    clk,
		rng:      opts.Rand,
	}
	recorder := &Recorder{attempts: s, policy: opts.Policy, clock: clk}
	streaks := &StreakTracker{daily: s, clock: clk}
	sessions := &SessionService{store: s, catalog: s, clock: clk, log: log.With("component", "sessions")}
	aggregator := &StatsAggregator{
		catalog:  s,
		attempts: s,
		sessions: s,
		streaks:  streaks,
		policy:   opts.Policy,
		size:     opts.SessionSize,
		clock:    clk,
		log:      log.With("component", "stats"),
	}

	return &Engine{
		Selector: selector,
		Recorder: recorder,
		Streaks:  streaks,
		Sessions: sessions,
		Stats:    aggregator,
		Games:    newGameService(selector, recorder, streaks, sessions, clk, log.With("component", "games")),
	}
}

// clock pins "now" and "today" to the configured calendar.
type clock struct {
	now func() time.Time
	loc *time.Location
}

func (c clock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c clock) Today() string {
	return streak.DateOf(c.now(), c.loc)
}
