package api

import (
	"net/http"

	"github.com/remaimber-it/trivia/internal/domain/attempt"
	"github.com/remaimber-it/trivia/internal/domain/category"
)

// ── Request / Response types ────────────────────────────────────────────────

type CategoryResponse struct {
	Slug     string `json:"slug" example:"space"`
	Name     string `json:"name" example:"Space"`
	Icon     string `json:"icon" example:"rocket"`
	Color    string `json:"color" example:"#1E3A8A"`
	Mastered int    `json:"mastered" example:"3"`
	Total    int    `json:"total" example:"12"`
	Answered int    `json:"answered" example:"9"`
	Correct  int    `json:"correct" example:"6"`
	Accuracy int    `json:"accuracy" example:"67"`
	Complete bool   `json:"complete" example:"false"`
}

type CountsResponse struct {
	Mode      string `json:"mode" example:"category"`
	Category  string `json:"category,omitempty" example:"space"`
	Available int    `json:"available" example:"9"`
}

func toCategoryResponse(p category.Progress) CategoryResponse {
	return CategoryResponse{
		Slug:     p.Category.Slug,
		Name:     p.Category.Name,
		Icon:     p.Category.Icon,
		Color:    p.Category.Color,
		Mastered: p.Mastered,
		Total:    p.Total,
		Answered: p.Answered,
		Correct:  p.Correct,
		Accuracy: p.Accuracy(),
		Complete: p.IsComplete(),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listCategories returns every category with the learner's progress.
// @Summary      List categories
// @Description  List the categories of a locale with mastered/total counts and accuracy.
// @Tags         Categories
// @Produce      json
// @Param        locale  query     string  false  "Catalog locale"
// @Success      200     {array}   CategoryResponse
// @Router       /categories [get]
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	progress := h.engine.Stats.CategoriesWithProgress(r.Context(), h.localeOf(r))

	response := make([]CategoryResponse, len(progress))
	for i, p := range progress {
		response[i] = toCategoryResponse(p)
	}
	respondJSON(w, http.StatusOK, response)
}

// getCategory returns one category with progress.
// @Summary      Get a category
// @Tags         Categories
// @Produce      json
// @Param        slug    path      string  true   "Category slug"
// @Param        locale  query     string  false  "Catalog locale"
// @Success      200     {object}  CategoryResponse
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /categories/{slug} [get]
func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	p, err := h.engine.Stats.CategoryProgress(r.Context(), h.localeOf(r), r.PathValue("slug"))
	if h.handleStoreError(w, err, "category") {
		return
	}
	respondJSON(w, http.StatusOK, toCategoryResponse(p))
}

// getCounts returns the size of an eligible pool without loading questions.
// @Summary      Count available questions
// @Description  Size of the eligible pool for a mode: today's facts (daily), unanswered questions (mixed) or unmastered questions of a category.
// @Tags         Categories
// @Produce      json
// @Param        mode      query     string  true   "daily, mixed or category"
// @Param        category  query     string  false  "Category slug, required for mode=category"
// @Param        locale    query     string  false  "Catalog locale"
// @Success      200       {object}  CountsResponse
// @Failure      400       {object}  map[string]string
// @Failure      500       {object}  map[string]string
// @Router       /counts [get]
func (h *Handler) getCounts(w http.ResponseWriter, r *http.Request) {
	mode, err := attempt.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	slug := r.URL.Query().Get("category")
	if mode == attempt.ModeCategory && slug == "" {
		respondError(w, http.StatusBadRequest, "category is required")
		return
	}

	n, err := h.engine.Selector.Count(r.Context(), mode, h.localeOf(r), slug)
	if h.handleStoreError(w, err, "questions") {
		return
	}
	respondJSON(w, http.StatusOK, CountsResponse{Mode: mode.String(), Category: slug, Available: n})
}
