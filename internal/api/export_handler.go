package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/remaimber-it/trivia/internal/catalog"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportData struct {
	Version    string            `json:"version" example:"1.0"`
	ExportedAt string            `json:"exported_at" example:"2024-03-05T12:00:00Z"`
	Sessions   []SessionResponse `json:"sessions"`
}

type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	ActiveGames int    `json:"active_games" example:"0"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportSessions downloads the whole session history with transcripts.
// @Summary      Export session history
// @Tags         Sessions
// @Produce      json
// @Success      200  {object}  ExportData
// @Failure      500  {object}  map[string]string
// @Router       /export [get]
func (h *Handler) exportSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.engine.Sessions.AllSessions(r.Context())
	if h.handleStoreError(w, err, "sessions") {
		return
	}

	exportData := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Sessions:   make([]SessionResponse, len(sessions)),
	}
	for i, ts := range sessions {
		exportData.Sessions[i] = toSessionResponse(ts, true)
	}

	w.Header().Set("Content-Disposition", "attachment; filename=trivia-sessions.json")
	respondJSON(w, http.StatusOK, exportData)
}

// importCatalog loads categories and questions.
// @Summary      Import catalog
// @Description  Upsert categories and questions. Invalid questions are skipped and counted.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        body  body      catalog.Data  true  "Catalog file"
// @Success      201   {object}  catalog.Result
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /catalog/import [post]
func (h *Handler) importCatalog(w http.ResponseWriter, r *http.Request) {
	var data catalog.Data
	if !decodeJSON(w, r, &data) {
		return
	}

	result, err := catalog.Import(r.Context(), h.content, &data, h.locale, h.logger)
	if h.handleStoreError(w, err, "catalog") {
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// markFactShown records that a fact was displayed today, making its
// questions eligible for the daily quiz.
// @Summary      Mark a fact as shown
// @Tags         Catalog
// @Param        factID  path  int  true  "Fact ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /facts/{factID}/shown [post]
func (h *Handler) markFactShown(w http.ResponseWriter, r *http.Request) {
	factID, err := strconv.ParseInt(r.PathValue("factID"), 10, 64)
	if err != nil || factID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid fact id")
		return
	}

	err = h.content.MarkFactShown(r.Context(), factID, h.engine.Streaks.Today())
	if h.handleStoreError(w, err, "fact") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// health reports whether the database is reachable.
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.content.Ping(r.Context()); err != nil {
		h.logger.Error("health check failed", "error", err)
		respondError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", ActiveGames: h.engine.Games.Active()})
}
