package api

import (
	"net/http"
)

// ── Request / Response types ────────────────────────────────────────────────

type StatsResponse struct {
	TotalAnswered int     `json:"total_answered" example:"120"`
	TotalCorrect  int     `json:"total_correct" example:"84"`
	Accuracy      int     `json:"accuracy" example:"70"`
	AccuracyRatio float64 `json:"accuracy_ratio" example:"0.7"`
	CurrentStreak int     `json:"current_streak" example:"3"`
	BestStreak    int     `json:"best_streak" example:"9"`
	TotalMastered int     `json:"total_mastered" example:"61"`
	TestsTaken    int     `json:"tests_taken" example:"12"`
	TestsThisWeek int     `json:"tests_this_week" example:"2"`
	MasteredToday int     `json:"mastered_today" example:"4"`
	CorrectToday  int     `json:"correct_today" example:"6"`
}

type StreakResponse struct {
	Current int `json:"current" example:"3"`
	Best    int `json:"best" example:"9"`
}

type DailyResponse struct {
	Date           string `json:"date" example:"2024-03-05"`
	Available      int    `json:"available" example:"7"`
	Started        bool   `json:"started" example:"true"`
	Completed      bool   `json:"completed" example:"false"`
	TotalQuestions int    `json:"total_questions" example:"7"`
	CorrectAnswers int    `json:"correct_answers" example:"0"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getStats returns the statistics screen summary.
// @Summary      Overall statistics
// @Description  Figures that cannot be read fall back to zero.
// @Tags         Progress
// @Produce      json
// @Param        locale  query     string  false  "Catalog locale"
// @Success      200     {object}  StatsResponse
// @Router       /stats [get]
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	o := h.engine.Stats.Overall(r.Context(), h.localeOf(r))
	respondJSON(w, http.StatusOK, StatsResponse{
		TotalAnswered: o.TotalAnswered,
		TotalCorrect:  o.TotalCorrect,
		Accuracy:      o.Accuracy(),
		AccuracyRatio: o.AccuracyRatio(),
		CurrentStreak: o.CurrentStreak,
		BestStreak:    o.BestStreak,
		TotalMastered: o.TotalMastered,
		TestsTaken:    o.TestsTaken,
		TestsThisWeek: o.TestsThisWeek,
		MasteredToday: o.MasteredToday,
		CorrectToday:  o.CorrectToday,
	})
}

// getStreak returns the daily streak.
// @Summary      Daily streak
// @Tags         Progress
// @Produce      json
// @Success      200  {object}  StreakResponse
// @Failure      500  {object}  map[string]string
// @Router       /streak [get]
func (h *Handler) getStreak(w http.ResponseWriter, r *http.Request) {
	current, err := h.engine.Streaks.DailyStreak(r.Context())
	if h.handleStoreError(w, err, "streak") {
		return
	}
	best, err := h.engine.Streaks.BestStreak(r.Context())
	if h.handleStoreError(w, err, "streak") {
		return
	}
	respondJSON(w, http.StatusOK, StreakResponse{Current: current, Best: best})
}

// getDaily returns today's daily quiz status.
// @Summary      Daily quiz status
// @Tags         Progress
// @Produce      json
// @Param        locale  query     string  false  "Catalog locale"
// @Success      200     {object}  DailyResponse
// @Failure      500     {object}  map[string]string
// @Router       /daily [get]
func (h *Handler) getDaily(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	available, err := h.engine.Selector.DailyCount(ctx, h.localeOf(r))
	if h.handleStoreError(w, err, "daily") {
		return
	}
	p, err := h.engine.Streaks.DailyProgress(ctx)
	if h.handleStoreError(w, err, "daily") {
		return
	}

	response := DailyResponse{Date: h.engine.Streaks.Today(), Available: available}
	if p != nil {
		response.Started = true
		response.Completed = p.Completed()
		response.TotalQuestions = p.TotalQuestions
		response.CorrectAnswers = p.CorrectAnswers
	}
	respondJSON(w, http.StatusOK, response)
}
