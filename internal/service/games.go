package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/remaimber-it/trivia/internal/domain/attempt"
	"github.com/remaimber-it/trivia/internal/domain/session"
	"github.com/remaimber-it/trivia/internal/logger"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrEmptyPool    = errors.New("no questions available")
)

// GameService keeps the games in progress. Each answer is recorded as an
// attempt right away; completing a game stores its session and, for a
// fully answered daily game, today's daily progress.
type GameService struct {
	selector *Selector
	recorder *Recorder
	streaks  *StreakTracker
	sessions *SessionService
	clock    clock
	log      *logger.Logger

	mu    sync.RWMutex
	games map[string]*gameEntry // gameID → entry
}

// gameEntry tracks how far completion got, so a retry after a failed daily
// update does not store the session twice.
type gameEntry struct {
	game       *session.Game
	sessionID  string // set once the session is stored
	completing bool
}

func newGameService(sel *Selector, rec *Recorder, st *StreakTracker, ss *SessionService, clk clock, log *logger.Logger) *GameService {
	return &GameService{
		selector: sel,
		recorder: rec,
		streaks:  st,
		sessions: ss,
		clock:    clk,
		log:      log,
		games:    make(map[string]*gameEntry),
	}
}

// Start selects questions for mode and registers a new game. It returns
// ErrEmptyPool when nothing is eligible.
func (gs *GameService) Start(ctx context.Context, mode attempt.Mode, locale string, categorySlug *string) (*session.Game, error) {
	slug := ""
	if mode == attempt.ModeCategory {
		if categorySlug == nil || *categorySlug == "" {
			return nil, fmt.Errorf("%w: category mode needs a category", attempt.ErrInvalidMode)
		}
		slug = *categorySlug
	} else {
		categorySlug = nil
	}

	questions, err := gs.selector.Select(ctx, mode, locale, slug)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrEmptyPool
	}

	if mode == attempt.ModeDaily {
		if err := gs.streaks.StartDailyProgress(ctx, len(questions)); err != nil {
			return nil, err
		}
	}

	game := session.NewGame(mode, categorySlug, locale, questions, session.GameConfig{
		Rand: gs.selector.newRand(),
		Now:  gs.clock.Now,
	})

	gs.mu.Lock()
	gs.games[game.ID] = &gameEntry{game: game}
	gs.mu.Unlock()

	gs.log.Info("game started", "game_id", game.ID, "mode", mode, "questions", len(questions))
	return game, nil
}

// Get returns a game in progress.
func (gs *GameService) Get(gameID string) (*session.Game, error) {
	gs.mu.RLock()
	e, ok := gs.games[gameID]
	gs.mu.RUnlock()
	if !ok {
		return nil, ErrGameNotFound
	}
	return e.game, nil
}

// Answer grades the choice and records the attempt. The game only counts
// the answer once the attempt is stored, so a failed write can be retried.
func (gs *GameService) Answer(ctx context.Context, gameID string, questionID int64, chosen string) (bool, error) {
	game, err := gs.Get(gameID)
	if err != nil {
		return false, err
	}
	correct, err := game.Begin(questionID, chosen)
	if err != nil {
		return false, err
	}
	if _, err := gs.recorder.RecordAnswer(ctx, questionID, correct, game.Mode, &game.ID); err != nil {
		game.Abort(questionID)
		return false, err
	}
	game.Commit(questionID)
	return correct, nil
}

// Complete stores the finished game as a session and forgets it. A daily
// game only advances the streak when every question was answered. When the
// daily update fails the game stays registered with its session stored, and
// calling Complete again only retries the daily update.
func (gs *GameService) Complete(ctx context.Context, gameID string) (string, error) {
	gs.mu.Lock()
	e, ok := gs.games[gameID]
	if !ok || e.completing {
		gs.mu.Unlock()
		return "", ErrGameNotFound
	}
	e.completing = true
	gs.mu.Unlock()

	sessionID, err := gs.complete(ctx, e)

	gs.mu.Lock()
	if err == nil {
		delete(gs.games, gameID)
	} else {
		e.completing = false
	}
	gs.mu.Unlock()
	return sessionID, err
}

func (gs *GameService) complete(ctx context.Context, e *gameEntry) (string, error) {
	game := e.game
	if err := game.Seal(); err != nil {
		return "", err
	}

	result := game.Result(gs.clock.Now().Sub(game.StartedAt))
	if e.sessionID == "" {
		sessionID, err := gs.sessions.SaveSessionResult(ctx, result)
		if err != nil {
			game.Unseal()
			return "", err
		}
		e.sessionID = sessionID
	}

	if game.Mode == attempt.ModeDaily && game.Done() {
		if err := gs.streaks.SaveDailyProgress(ctx, result.TotalQuestions, result.CorrectAnswers); err != nil {
			gs.log.Warn("daily progress not saved, completion can be retried",
				"game_id", game.ID, "session_id", e.sessionID, "error", err)
			return e.sessionID, err
		}
	}

	gs.log.Info("game completed",
		"game_id", game.ID,
		"session_id", e.sessionID,
		"correct", result.CorrectAnswers,
		"total", result.TotalQuestions,
	)
	return e.sessionID, nil
}

// Active returns the number of games in progress.
func (gs *GameService) Active() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return len(gs.games)
}
