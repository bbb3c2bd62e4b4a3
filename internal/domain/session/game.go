package session

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/remaimber-it/trivia/internal/domain/attempt"
	"github.com/remaimber-it/trivia/internal/domain/question"
	"github.com/remaimber-it/trivia/internal/id"
)

var (
	ErrUnknownQuestion = errors.New("session: question is not part of this game")
	ErrAlreadyAnswered = errors.New("session: question already answered")
	ErrGameClosed      = errors.New("session: game no longer accepts answers")
	ErrAnswerPending   = errors.New("session: an answer is still being recorded")
)

// GameConfig holds optional collaborators of a game.
type GameConfig struct {
	Rand *rand.Rand       // nil = seeded from the clock
	Now  func() time.Time // nil = time.Now
}

// Game is the controller for one quiz in progress. It owns the shuffle
// order of every question so navigating back and forth never reshuffles.
type Game struct {
	ID           string
	Mode         attempt.Mode
	CategorySlug *string
	Locale       string
	Questions    []question.Question
	StartedAt    time.Time

	mu        sync.Mutex
	rng       *rand.Rand
	presented map[int64][]string
	answers   map[int64]string
	pending   map[int64]pendingAnswer
	sealed    bool
	correct   int
	streak    int
	best      int
}

// NewGame creates a game over an already selected question set.
func NewGame(mode attempt.Mode, categorySlug *string, locale string, questions []question.Question, cfg GameConfig) *Game {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}

	qs := make([]question.Question, len(questions))
	copy(qs, questions)

	return &Game{
		ID:           id.GenerateID(),
		Mode:         mode,
		CategorySlug: categorySlug,
		Locale:       locale,
		Questions:    qs,
		StartedAt:    now(),
		rng:          rng,
		presented:    make(map[int64][]string, len(qs)),
		answers:      make(map[int64]string, len(qs)),
		pending:      make(map[int64]pendingAnswer),
	}
}

type pendingAnswer struct {
	chosen  string
	correct bool
}

// Question looks up a question of this game.
func (g *Game) Question(questionID int64) (question.Question, bool) {
	for _, q := range g.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return question.Question{}, false
}

// Answers returns the presentation order for a question. The first call
// fixes the order; later calls return the same slice contents.
func (g *Game) Answers(questionID int64) ([]string, error) {
	q, ok := g.Question(questionID)
	if !ok {
		return nil, ErrUnknownQuestion
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.answersLocked(q)...), nil
}

func (g *Game) answersLocked(q question.Question) []string {
	if order, ok := g.presented[q.ID]; ok {
		return order
	}
	order := question.ShuffledAnswers(q, g.rng)
	g.presented[q.ID] = order
	return order
}

// Answer records the learner's choice and reports whether it was correct.
// Each question accepts one answer per game.
func (g *Game) Answer(questionID int64, chosen string) (bool, error) {
	correct, err := g.Begin(questionID, chosen)
	if err != nil {
		return false, err
	}
	g.Commit(questionID)
	return correct, nil
}

// Begin grades chosen and reserves the question. The answer only counts
// once Commit is called; Abort releases the reservation so the question
// can be answered again.
func (g *Game) Begin(questionID int64, chosen string) (bool, error) {
	q, ok := g.Question(questionID)
	if !ok {
		return false, ErrUnknownQuestion
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed {
		return false, ErrGameClosed
	}
	if _, done := g.answers[questionID]; done {
		return false, ErrAlreadyAnswered
	}
	if _, busy := g.pending[questionID]; busy {
		return false, ErrAlreadyAnswered
	}
	g.answersLocked(q)

	correct := q.IsCorrect(chosen)
	g.pending[questionID] = pendingAnswer{chosen: chosen, correct: correct}
	return correct, nil
}

// Commit applies a reserved answer to the score and the in-game streak.
func (g *Game) Commit(questionID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.pending[questionID]
	if !ok {
		return
	}
	delete(g.pending, questionID)
	g.answers[questionID] = p.chosen

	if p.correct {
		g.correct++
		g.streak++
		if g.streak > g.best {
			g.best = g.streak
		}
	} else {
		g.streak = 0
	}
}

// Abort drops a reserved answer.
func (g *Game) Abort(questionID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.pending, questionID)
}

// Seal stops the game from taking answers so its result can be stored.
// It fails with ErrAnswerPending while an answer is between Begin and
// Commit.
func (g *Game) Seal() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.pending) > 0 {
		return ErrAnswerPending
	}
	g.sealed = true
	return nil
}

// Unseal lets a sealed game take answers again.
func (g *Game) Unseal() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sealed = false
}

// Progress returns answered and correct counts so far.
func (g *Game) Progress() (answered, correct int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.answers), g.correct
}

// Done reports whether every question has been answered.
func (g *Game) Done() bool {
	answered, _ := g.Progress()
	return answered >= len(g.Questions)
}

// Result snapshots the game for the session store.
func (g *Game) Result(elapsed time.Duration) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	snapshots := make([]QuestionSnapshot, len(g.Questions))
	for i, q := range g.Questions {
		snapshots[i] = Snapshot(q, g.answersLocked(q))
	}
	answers := make(map[int64]string, len(g.answers))
	for k, v := range g.answers {
		answers[k] = v
	}

	return Result{
		ID:             g.ID,
		Mode:           g.Mode,
		CategorySlug:   g.CategorySlug,
		Locale:         g.Locale,
		TotalQuestions: len(g.Questions),
		CorrectAnswers: g.correct,
		Elapsed:        elapsed,
		BestStreak:     g.best,
		Questions:      snapshots,
		Answers:        answers,
	}
}
