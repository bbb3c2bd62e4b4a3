package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/remaimber-it/trivia/internal/api"
	"github.com/remaimber-it/trivia/internal/logger"
	"github.com/remaimber-it/trivia/internal/service"
	"github.com/remaimber-it/trivia/internal/store"
)

const catalogJSON = `{
  "version": "1.0",
  "locale": "en",
  "categories": [
    {
      "slug": "space", "name": "Space", "icon": "rocket", "color": "#1E3A8A",
      "questions": [
        {"id": 1, "fact_id": 1, "type": "multiple_choice", "text": "Largest planet?", "correct_answer": "Jupiter", "wrong_answers": ["Mars", "Venus", "Earth"]},
        {"id": 2, "fact_id": 2, "type": "true_false", "text": "The sun is a star", "correct_answer": "True"}
      ]
    }
  ]
}`

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "trivia.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	engine := service.NewEngine(s, logger.Nop(), service.Options{
		Location: time.UTC,
		Now:      func() time.Time { return now },
		Rand:     rand.New(rand.NewSource(1)),
	})
	h := api.NewHandler(engine, s, logger.Nop(), "en")

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, h)
	return api.Logging(logger.Nop())(api.CORS(mux))
}

func do(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func importCatalog(t *testing.T, srv http.Handler) {
	t.Helper()
	rec := do(t, srv, http.MethodPost, "/catalog/import", catalogJSON)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected a request id header")
	}
}

func TestListCategories(t *testing.T) {
	srv := newTestServer(t)
	importCatalog(t, srv)

	rec := do(t, srv, http.MethodGet, "/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var categories []api.CategoryResponse
	decode(t, rec, &categories)
	if len(categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(categories))
	}
	if categories[0].Total != 2 || categories[0].Mastered != 0 {
		t.Errorf("expected 0/2 mastered, got %d/%d", categories[0].Mastered, categories[0].Total)
	}
}

func TestGetCategory_NotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/categories/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestCounts(t *testing.T) {
	srv := newTestServer(t)
	importCatalog(t, srv)

	tests := []struct {
		path   string
		status int
		want   int
	}{
		{"/counts?mode=mixed", http.StatusOK, 2},
		{"/counts?mode=category&category=space", http.StatusOK, 2},
		{"/counts?mode=daily", http.StatusOK, 0},
		{"/counts?mode=category", http.StatusBadRequest, 0},
		{"/counts?mode=weekly", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		rec := do(t, srv, http.MethodGet, tt.path, "")
		if rec.Code != tt.status {
			t.Errorf("%s: expected status %d, got %d", tt.path, tt.status, rec.Code)
			continue
		}
		if tt.status != http.StatusOK {
			continue
		}
		var counts api.CountsResponse
		decode(t, rec, &counts)
		if counts.Available != tt.want {
			t.Errorf("%s: expected %d available, got %d", tt.path, tt.want, counts.Available)
		}
	}
}

func TestGameFlow(t *testing.T) {
	srv := newTestServer(t)
	importCatalog(t, srv)

	for _, factID := range []int{1, 2} {
		rec := do(t, srv, http.MethodPost, fmt.Sprintf("/facts/%d/shown", factID), "")
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", rec.Code)
		}
	}

	rec := do(t, srv, http.MethodPost, "/games", `{"mode": "daily"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var game api.GameResponse
	decode(t, rec, &game)
	if len(game.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(game.Questions))
	}

	// The presentation order is stable across reads.
	rec = do(t, srv, http.MethodGet, "/games/"+game.ID, "")
	var again api.GameResponse
	decode(t, rec, &again)
	for i := range game.Questions {
		if fmt.Sprint(game.Questions[i].Answers) != fmt.Sprint(again.Questions[i].Answers) {
			t.Errorf("expected stable answer order, got %v then %v", game.Questions[i].Answers, again.Questions[i].Answers)
		}
	}

	answers := map[int64]string{1: "Jupiter", 2: "true"}
	for _, q := range game.Questions {
		body := fmt.Sprintf(`{"question_id": %d, "answer": %q}`, q.ID, answers[q.ID])
		rec := do(t, srv, http.MethodPost, "/games/"+game.ID+"/answers", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var answer api.AnswerResponse
		decode(t, rec, &answer)
		if !answer.Correct {
			t.Errorf("expected answer to question %d to be correct", q.ID)
		}
	}

	rec = do(t, srv, http.MethodPost, "/games/"+game.ID+"/answers", `{"question_id": 1, "answer": "Mars"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected status 409 for a second answer, got %d", rec.Code)
	}

	rec = do(t, srv, http.MethodPost, "/games/"+game.ID+"/complete", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var completed api.CompleteGameResponse
	decode(t, rec, &completed)

	rec = do(t, srv, http.MethodGet, "/sessions/"+completed.SessionID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var sess api.SessionResponse
	decode(t, rec, &sess)
	if sess.CorrectAnswers != 2 || sess.TotalQuestions != 2 || sess.Accuracy != 100 {
		t.Errorf("expected 2/2 at 100%%, got %d/%d at %d%%", sess.CorrectAnswers, sess.TotalQuestions, sess.Accuracy)
	}
	if len(sess.Questions) != 2 || sess.Questions[0].Chosen == nil {
		t.Errorf("expected a replayable transcript, got %+v", sess.Questions)
	}

	rec = do(t, srv, http.MethodGet, "/daily", "")
	var daily api.DailyResponse
	decode(t, rec, &daily)
	if !daily.Completed || daily.Date != "2024-03-05" {
		t.Errorf("expected daily completed on 2024-03-05, got %+v", daily)
	}

	rec = do(t, srv, http.MethodGet, "/streak", "")
	var streak api.StreakResponse
	decode(t, rec, &streak)
	if streak.Current != 1 || streak.Best != 1 {
		t.Errorf("expected streak 1/1, got %d/%d", streak.Current, streak.Best)
	}

	rec = do(t, srv, http.MethodGet, "/stats", "")
	var stats api.StatsResponse
	decode(t, rec, &stats)
	if stats.TotalAnswered != 2 || stats.TotalMastered != 2 || stats.TestsTaken != 1 || stats.Accuracy != 100 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestStartGame_Validation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		body   string
		status int
	}{
		{`{"mode": "category"}`, http.StatusBadRequest},
		{`{"mode": "weekly"}`, http.StatusBadRequest},
		{`not json`, http.StatusBadRequest},
		{`{"mode": "mixed"}`, http.StatusConflict},
	}
	for _, tt := range tests {
		rec := do(t, srv, http.MethodPost, "/games", tt.body)
		if rec.Code != tt.status {
			t.Errorf("%s: expected status %d, got %d", tt.body, tt.status, rec.Code)
		}
	}
}

func TestGame_NotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/games/missing/complete", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestListSessions_BadLimit(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/sessions?limit=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}

	rec = do(t, srv, http.MethodGet, "/sessions", "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestExport(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var data api.ExportData
	decode(t, rec, &data)
	if data.Version != "1.0" || data.Sessions == nil {
		t.Errorf("unexpected export %+v", data)
	}
}

func TestCORS_Preflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/games", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected allow-origin header, got %q", got)
	}
}
