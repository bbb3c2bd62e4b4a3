// internal/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/remaimber-it/trivia/internal/catalog"
	"github.com/remaimber-it/trivia/internal/domain/attempt"
	"github.com/remaimber-it/trivia/internal/domain/session"
	"github.com/remaimber-it/trivia/internal/logger"
	"github.com/remaimber-it/trivia/internal/service"
	"github.com/remaimber-it/trivia/internal/store"
)

// ContentStore is the catalog side the handlers write to directly.
type ContentStore interface {
	catalog.Writer
	MarkFactShown(ctx context.Context, factID int64, date string) error
	Ping(ctx context.Context) error
}

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	engine  *service.Engine
	content ContentStore
	logger  *logger.Logger
	locale  string
}

// NewHandler creates a Handler. locale is used when a request has no
// ?locale= parameter.
func NewHandler(engine *service.Engine, content ContentStore, log *logger.Logger, locale string) *Handler {
	return &Handler{
		engine:  engine,
		content: content,
		logger:  log,
		locale:  locale,
	}
}

func (h *Handler) localeOf(r *http.Request) string {
	if l := r.URL.Query().Get("locale"); l != "" {
		return l
	}
	return h.locale
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

type validator interface {
	Validate() error
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleStoreError maps engine and store errors to HTTP responses.
// Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, service.ErrGameNotFound):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, attempt.ErrInvalidMode), errors.Is(err, session.ErrUnknownQuestion):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrAlreadyAnswered), errors.Is(err, service.ErrEmptyPool),
		errors.Is(err, session.ErrGameClosed), errors.Is(err, session.ErrAnswerPending):
		respondError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("store error", "error", err, "entity", entity)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
