// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Health
	mux.HandleFunc("GET /health", h.health)

	// Catalog
	mux.HandleFunc("GET /categories", h.listCategories)
	mux.HandleFunc("GET /categories/{slug}", h.getCategory)
	mux.HandleFunc("GET /counts", h.getCounts)
	mux.HandleFunc("POST /catalog/import", h.importCatalog)
	mux.HandleFunc("POST /facts/{factID}/shown", h.markFactShown)

	// Games
	mux.HandleFunc("POST /games", h.startGame)
	mux.HandleFunc("GET /games/{gameID}", h.getGame)
	mux.HandleFunc("POST /games/{gameID}/answers", h.answerGame)
	mux.HandleFunc("POST /games/{gameID}/complete", h.completeGame)

	// Sessions
	mux.HandleFunc("GET /sessions", h.listSessions)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("GET /export", h.exportSessions)

	// Progress
	mux.HandleFunc("GET /stats", h.getStats)
	mux.HandleFunc("GET /streak", h.getStreak)
	mux.HandleFunc("GET /daily", h.getDaily)
}
