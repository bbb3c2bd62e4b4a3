package api

import (
	"errors"
	"net/http"

	"github.com/remaimber-it/trivia/internal/domain/attempt"
	"github.com/remaimber-it/trivia/internal/domain/session"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartGameRequest struct {
	Mode     attempt.Mode `json:"mode" swaggertype:"string" example:"category"`
	Category *string      `json:"category,omitempty" example:"space"`
	Locale   string       `json:"locale,omitempty" example:"en"`
}

func (r *StartGameRequest) Validate() error {
	if !r.Mode.Valid() {
		return errors.New("mode must be daily, mixed or category")
	}
	if r.Mode == attempt.ModeCategory && (r.Category == nil || *r.Category == "") {
		return errors.New("category is required")
	}
	return nil
}

type GameQuestion struct {
	ID       int64    `json:"id" example:"55"`
	Text     string   `json:"text" example:"Which planet is largest?"`
	Type     string   `json:"type" example:"multiple_choice"`
	Category string   `json:"category" example:"space"`
	Answers  []string `json:"answers"`
}

type GameResponse struct {
	ID        string         `json:"id" example:"3f1c1f7e-5a0e-4a53-9a55-0b8f5d7f8f0c"`
	Mode      string         `json:"mode" example:"category"`
	Category  *string        `json:"category,omitempty" example:"space"`
	Locale    string         `json:"locale" example:"en"`
	Questions []GameQuestion `json:"questions"`
	Answered  int            `json:"answered" example:"0"`
	Correct   int            `json:"correct" example:"0"`
	Done      bool           `json:"done" example:"false"`
}

type AnswerRequest struct {
	QuestionID int64  `json:"question_id" example:"55"`
	Answer     string `json:"answer" example:"Jupiter"`
}

func (r *AnswerRequest) Validate() error {
	if r.QuestionID <= 0 {
		return errors.New("question_id is required")
	}
	if r.Answer == "" {
		return errors.New("answer is required")
	}
	return nil
}

type AnswerResponse struct {
	Correct       bool    `json:"correct" example:"true"`
	CorrectAnswer string  `json:"correct_answer" example:"Jupiter"`
	Explanation   *string `json:"explanation,omitempty"`
	Answered      int     `json:"answered" example:"1"`
	CorrectCount  int     `json:"correct_count" example:"1"`
	Done          bool    `json:"done" example:"false"`
}

type CompleteGameResponse struct {
	SessionID string `json:"session_id" example:"3f1c1f7e-5a0e-4a53-9a55-0b8f5d7f8f0c"`
}

func toGameResponse(g *session.Game) (GameResponse, error) {
	questions := make([]GameQuestion, len(g.Questions))
	for i, q := range g.Questions {
		answers, err := g.Answers(q.ID)
		if err != nil {
			return GameResponse{}, err
		}
		questions[i] = GameQuestion{
			ID:       q.ID,
			Text:     q.Text,
			Type:     string(q.Type),
			Category: q.CategorySlug,
			Answers:  answers,
		}
	}
	answered, correct := g.Progress()
	return GameResponse{
		ID:        g.ID,
		Mode:      g.Mode.String(),
		Category:  g.CategorySlug,
		Locale:    g.Locale,
		Questions: questions,
		Answered:  answered,
		Correct:   correct,
		Done:      answered >= len(g.Questions),
	}, nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startGame selects questions and starts a quiz.
// @Summary      Start a game
// @Description  Select up to one session of questions for the mode. Answer order is fixed for the life of the game.
// @Tags         Games
// @Accept       json
// @Produce      json
// @Param        body  body      StartGameRequest  true  "Game to start"
// @Success      201   {object}  GameResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "no questions available"
// @Failure      500   {object}  map[string]string
// @Router       /games [post]
func (h *Handler) startGame(w http.ResponseWriter, r *http.Request) {
	var req StartGameRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	locale := req.Locale
	if locale == "" {
		locale = h.localeOf(r)
	}

	game, err := h.engine.Games.Start(r.Context(), req.Mode, locale, req.Category)
	if h.handleStoreError(w, err, "game") {
		return
	}
	response, err := toGameResponse(game)
	if h.handleStoreError(w, err, "game") {
		return
	}
	respondJSON(w, http.StatusCreated, response)
}

// getGame returns a game in progress.
// @Summary      Get a game
// @Tags         Games
// @Produce      json
// @Param        gameID  path      string  true  "Game ID"
// @Success      200     {object}  GameResponse
// @Failure      404     {object}  map[string]string
// @Router       /games/{gameID} [get]
func (h *Handler) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.engine.Games.Get(r.PathValue("gameID"))
	if h.handleStoreError(w, err, "game") {
		return
	}
	response, err := toGameResponse(game)
	if h.handleStoreError(w, err, "game") {
		return
	}
	respondJSON(w, http.StatusOK, response)
}

// answerGame submits the answer to one question of the game.
// @Summary      Answer a question
// @Description  Grade and record one answer. Each question accepts one answer per game.
// @Tags         Games
// @Accept       json
// @Produce      json
// @Param        gameID  path      string         true  "Game ID"
// @Param        body    body      AnswerRequest  true  "Chosen answer"
// @Success      200     {object}  AnswerResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      409     {object}  map[string]string  "already answered"
// @Failure      500     {object}  map[string]string
// @Router       /games/{gameID}/answers [post]
func (h *Handler) answerGame(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	gameID := r.PathValue("gameID")

	correct, err := h.engine.Games.Answer(r.Context(), gameID, req.QuestionID, req.Answer)
	if h.handleStoreError(w, err, "game") {
		return
	}

	game, err := h.engine.Games.Get(gameID)
	if h.handleStoreError(w, err, "game") {
		return
	}
	q, _ := game.Question(req.QuestionID)
	answered, correctCount := game.Progress()

	respondJSON(w, http.StatusOK, AnswerResponse{
		Correct:       correct,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Answered:      answered,
		CorrectCount:  correctCount,
		Done:          answered >= len(game.Questions),
	})
}

// completeGame stores the game as a session.
// @Summary      Complete a game
// @Description  Save the transcript as a session. A fully answered daily game completes today's daily quiz.
// @Tags         Games
// @Produce      json
// @Param        gameID  path      string  true  "Game ID"
// @Success      201     {object}  CompleteGameResponse
// @Failure      404     {object}  map[string]string
// @Failure      409     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /games/{gameID}/complete [post]
func (h *Handler) completeGame(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.engine.Games.Complete(r.Context(), r.PathValue("gameID"))
	if h.handleStoreError(w, err, "game") {
		return
	}
	respondJSON(w, http.StatusCreated, CompleteGameResponse{SessionID: sessionID})
}
