package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/remaimber-it/trivia/internal/domain/session"
	"github.com/remaimber-it/trivia/internal/domain/stats"
)

// ── Request / Response types ────────────────────────────────────────────────

type SessionCategory struct {
	Slug  string `json:"slug" example:"space"`
	Name  string `json:"name" example:"Space"`
	Icon  string `json:"icon" example:"rocket"`
	Color string `json:"color" example:"#1E3A8A"`
}

type TranscriptQuestion struct {
	ID            int64    `json:"id" example:"55"`
	Text          string   `json:"text" example:"Which planet is largest?"`
	Type          string   `json:"type" example:"multiple_choice"`
	CorrectAnswer string   `json:"correct_answer" example:"Jupiter"`
	Answers       []string `json:"answers"`
	Chosen        *string  `json:"chosen,omitempty" example:"Saturn"`
	Correct       bool     `json:"correct" example:"false"`
	Explanation   *string  `json:"explanation,omitempty"`
	Unavailable   bool     `json:"unavailable" example:"false"`
}

type SessionResponse struct {
	ID                     string               `json:"id" example:"3f1c1f7e-5a0e-4a53-9a55-0b8f5d7f8f0c"`
	Mode                   string               `json:"mode" example:"category"`
	CategorySlug           *string              `json:"category_slug,omitempty" example:"space"`
	Category               *SessionCategory     `json:"category,omitempty"`
	Locale                 string               `json:"locale" example:"en"`
	TotalQuestions         int                  `json:"total_questions" example:"10"`
	CorrectAnswers         int                  `json:"correct_answers" example:"7"`
	Accuracy               int                  `json:"accuracy" example:"70"`
	ElapsedMs              int64                `json:"elapsed_ms" example:"95000"`
	BestStreak             int                  `json:"best_streak" example:"4"`
	CompletedAt            string               `json:"completed_at" example:"2024-03-05T12:00:00Z"`
	ReplayAvailable        bool                 `json:"replay_available" example:"true"`
	UnavailableQuestionIDs []int64              `json:"unavailable_question_ids,omitempty"`
	Questions              []TranscriptQuestion `json:"questions,omitempty"`
}

func toSessionResponse(ts *session.TriviaSession, withTranscript bool) SessionResponse {
	response := SessionResponse{
		ID:                     ts.ID,
		Mode:                   ts.Mode.String(),
		CategorySlug:           ts.CategorySlug,
		Locale:                 ts.Locale,
		TotalQuestions:         ts.TotalQuestions,
		CorrectAnswers:         ts.CorrectAnswers,
		Accuracy:               stats.Percent(ts.CorrectAnswers, ts.TotalQuestions),
		ElapsedMs:              ts.Elapsed.Milliseconds(),
		BestStreak:             ts.BestStreak,
		CompletedAt:            ts.CompletedAt.UTC().Format(time.RFC3339),
		ReplayAvailable:        ts.ReplayAvailable(),
		UnavailableQuestionIDs: ts.UnavailableQuestionIDs,
	}
	if ts.Category != nil {
		response.Category = &SessionCategory{
			Slug:  ts.Category.Slug,
			Name:  ts.Category.Name,
			Icon:  ts.Category.Icon,
			Color: ts.Category.Color,
		}
	}
	if !withTranscript {
		return response
	}

	unavailable := make(map[int64]bool, len(ts.UnavailableQuestionIDs))
	for _, qid := range ts.UnavailableQuestionIDs {
		unavailable[qid] = true
	}
	response.Questions = make([]TranscriptQuestion, len(ts.Transcript.Questions))
	for i, snap := range ts.Transcript.Questions {
		q := snap.Question(ts.Locale)
		answers := snap.Presented
		if len(answers) == 0 {
			answers = q.Options()
		}
		tq := TranscriptQuestion{
			ID:            snap.ID,
			Text:          snap.Text,
			Type:          snap.Type,
			CorrectAnswer: snap.CorrectAnswer,
			Answers:       answers,
			Explanation:   snap.Explanation,
			Unavailable:   unavailable[snap.ID],
		}
		if chosen, ok := ts.Transcript.Answers[snap.ID]; ok {
			tq.Chosen = &chosen
			tq.Correct = q.IsCorrect(chosen)
		}
		response.Questions[i] = tq
	}
	return response
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listSessions returns completed quizzes, most recent first.
// @Summary      List sessions
// @Description  Recent sessions when limit is set, the whole history otherwise.
// @Tags         Sessions
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of sessions"
// @Success      200    {array}   SessionResponse
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /sessions [get]
func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	var (
		sessions []*session.TriviaSession
		err      error
	)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, convErr := strconv.Atoi(raw)
		if convErr != nil || limit < 0 {
			respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		sessions, err = h.engine.Sessions.RecentSessions(r.Context(), limit)
	} else {
		sessions, err = h.engine.Sessions.AllSessions(r.Context())
	}
	if h.handleStoreError(w, err, "sessions") {
		return
	}

	response := make([]SessionResponse, len(sessions))
	for i, ts := range sessions {
		response[i] = toSessionResponse(ts, false)
	}
	respondJSON(w, http.StatusOK, response)
}

// getSession returns one session with its replayable transcript.
// @Summary      Get a session
// @Description  Questions removed from the catalog since are flagged as unavailable but still replayed from the stored snapshot.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	ts, err := h.engine.Sessions.SessionByID(r.Context(), r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(ts, true))
}
