package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/remaimber-it/trivia/internal/domain/attempt"
	"github.com/remaimber-it/trivia/internal/domain/category"
	"github.com/remaimber-it/trivia/internal/domain/question"
	"github.com/remaimber-it/trivia/internal/domain/session"
	"github.com/remaimber-it/trivia/internal/domain/streak"
	"github.com/remaimber-it/trivia/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "trivia.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedQuestion(t *testing.T, s *store.SQLiteStore, id, factID int64, slug string) question.Question {
	t.Helper()
	q := question.Question{
		ID:            id,
		FactID:        factID,
		CategorySlug:  slug,
		Locale:        "en",
		Text:          "Question?",
		Type:          question.TypeMultipleChoice,
		CorrectAnswer: "A",
		WrongAnswers:  []string{"B", "C", "D"},
	}
	if err := s.SaveQuestion(context.Background(), q); err != nil {
		t.Fatalf("failed to save question: %v", err)
	}
	return q
}

func TestSaveQuestion_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	explanation := "because"
	q := question.Question{
		ID: 7, FactID: 3, CategorySlug: "space", Locale: "en",
		Text: "Is the sun a star?", Type: question.TypeTrueFalse,
		CorrectAnswer: "True", Explanation: &explanation,
	}
	if err := s.SaveQuestion(ctx, q); err != nil {
		t.Fatalf("SaveQuestion failed: %v", err)
	}

	got, err := s.QuestionsByIDs(ctx, []int64{7})
	if err != nil {
		t.Fatalf("QuestionsByIDs failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 question, got %d", len(got))
	}
	if got[0].Type != question.TypeTrueFalse {
		t.Errorf("expected type true_false, got %s", got[0].Type)
	}
	if got[0].Explanation == nil || *got[0].Explanation != "because" {
		t.Errorf("expected explanation 'because', got %v", got[0].Explanation)
	}
	if len(got[0].WrongAnswers) != 0 {
		t.Errorf("expected no wrong answers, got %v", got[0].WrongAnswers)
	}
}

func TestQuestionsShownOn(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedQuestion(t, s, 1, 10, "space")
	seedQuestion(t, s, 2, 10, "space")
	seedQuestion(t, s, 3, 11, "space")

	if err := s.MarkFactShown(ctx, 10, "2024-03-01"); err != nil {
		t.Fatalf("MarkFactShown failed: %v", err)
	}
	// Marking twice is harmless.
	if err := s.MarkFactShown(ctx, 10, "2024-03-01"); err != nil {
		t.Fatalf("MarkFactShown failed: %v", err)
	}

	qs, err := s.QuestionsShownOn(ctx, "en", "2024-03-01")
	if err != nil {
		t.Fatalf("QuestionsShownOn failed: %v", err)
	}
	if len(qs) != 2 {
		t.Errorf("expected 2 questions, got %d", len(qs))
	}

	n, err := s.CountShownOn(ctx, "en", "2024-03-02")
	if err != nil {
		t.Fatalf("CountShownOn failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 questions on another day, got %d", n)
	}
}

func TestAttemptCount_Monotonic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedQuestion(t, s, 1, 1, "space")

	prev := 0
	for i := 0; i < 5; i++ {
		a := attempt.New(1, i%2 == 0, attempt.ModeMixed, nil, time.Now())
		if err := s.SaveAttempt(ctx, a); err != nil {
			t.Fatalf("SaveAttempt failed: %v", err)
		}
		if a.ID == 0 {
			t.Error("expected attempt ID to be set")
		}
		n, err := s.AttemptCount(ctx, 1)
		if err != nil {
			t.Fatalf("AttemptCount failed: %v", err)
		}
		if n <= prev {
			t.Errorf("expected attempt count to grow past %d, got %d", prev, n)
		}
		prev = n
	}
}

func TestAttemptHistories_OldestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedQuestion(t, s, 1, 1, "space")

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, correct := range []bool{false, false, true} {
		a := attempt.New(1, correct, attempt.ModeCategory, nil, base.Add(time.Duration(i)*time.Minute))
		if err := s.SaveAttempt(ctx, a); err != nil {
			t.Fatalf("SaveAttempt failed: %v", err)
		}
	}

	histories, err := s.AttemptHistories(ctx, []int64{1, 2})
	if err != nil {
		t.Fatalf("AttemptHistories failed: %v", err)
	}
	h := histories[1]
	if len(h) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(h))
	}
	if !h[2].Correct || h[0].Correct {
		t.Errorf("expected attempts oldest first, got %+v", h)
	}
	if _, ok := histories[2]; ok {
		t.Error("expected no history for an unattempted question")
	}
}

func TestUnansweredAndCategoryTotals(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedQuestion(t, s, 1, 1, "space")
	seedQuestion(t, s, 2, 2, "space")
	seedQuestion(t, s, 3, 3, "history")

	for _, a := range []*attempt.Attempt{
		attempt.New(1, true, attempt.ModeMixed, nil, time.Now()),
		attempt.New(1, false, attempt.ModeMixed, nil, time.Now()),
		attempt.New(3, true, attempt.ModeMixed, nil, time.Now()),
	} {
		if err := s.SaveAttempt(ctx, a); err != nil {
			t.Fatalf("SaveAttempt failed: %v", err)
		}
	}

	n, err := s.CountUnanswered(ctx, "en")
	if err != nil {
		t.Fatalf("CountUnanswered failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 unanswered question, got %d", n)
	}

	ids, err := s.UnansweredQuestionIDs(ctx, "en")
	if err != nil {
		t.Fatalf("UnansweredQuestionIDs failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != 2 {
		t.Errorf("expected [2], got %v", ids)
	}

	totals, err := s.CategoryAttemptTotals(ctx, "en")
	if err != nil {
		t.Fatalf("CategoryAttemptTotals failed: %v", err)
	}
	if totals["space"].Answered != 2 || totals["space"].Correct != 1 {
		t.Errorf("expected space 2/1, got %+v", totals["space"])
	}
	if totals["history"].Answered != 1 || totals["history"].Correct != 1 {
		t.Errorf("expected history 1/1, got %+v", totals["history"])
	}
}

func TestUpsertDailyProgress_NeverDuplicates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.StartDailyProgress(ctx, "2024-03-01", 10); err != nil {
		t.Fatalf("StartDailyProgress failed: %v", err)
	}

	first := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			at := first.Add(time.Duration(i) * time.Minute)
			errs <- s.UpsertDailyProgress(ctx, streak.DailyProgress{
				Date: "2024-03-01", TotalQuestions: 10, CorrectAnswers: 7, CompletedAt: &at,
			})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("UpsertDailyProgress failed: %v", err)
		}
	}

	dates, err := s.CompletedDates(ctx)
	if err != nil {
		t.Fatalf("CompletedDates failed: %v", err)
	}
	if len(dates) != 1 || dates[0] != "2024-03-01" {
		t.Errorf("expected one completed date, got %v", dates)
	}

	p, err := s.GetDailyProgress(ctx, "2024-03-01")
	if err != nil {
		t.Fatalf("GetDailyProgress failed: %v", err)
	}
	if p.CorrectAnswers != 7 || !p.Completed() {
		t.Errorf("expected completed progress with 7 correct, got %+v", p)
	}
}

func TestUpsertDailyProgress_KeepsFirstCompletion(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)
	for _, at := range []time.Time{first, later} {
		at := at
		if err := s.UpsertDailyProgress(ctx, streak.DailyProgress{Date: "2024-03-01", TotalQuestions: 10, CorrectAnswers: 5, CompletedAt: &at}); err != nil {
			t.Fatalf("UpsertDailyProgress failed: %v", err)
		}
	}

	p, err := s.GetDailyProgress(ctx, "2024-03-01")
	if err != nil {
		t.Fatalf("GetDailyProgress failed: %v", err)
	}
	if !p.CompletedAt.Equal(first) {
		t.Errorf("expected completion %v, got %v", first, p.CompletedAt)
	}
}

func TestGetDailyProgress_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetDailyProgress(context.Background(), "2024-03-01")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRaiseBestStreak_NeverDecreases(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, n := range []int{2, 5, 3} {
		if err := s.RaiseBestStreak(ctx, n); err != nil {
			t.Fatalf("RaiseBestStreak failed: %v", err)
		}
	}
	best, err := s.GetBestStreak(ctx)
	if err != nil {
		t.Fatalf("GetBestStreak failed: %v", err)
	}
	if best != 5 {
		t.Errorf("expected best streak 5, got %d", best)
	}
}

func TestSession_RoundTripWithCategory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SaveCategory(ctx, category.New("space", "Space", "rocket", "#000080", "en")); err != nil {
		t.Fatalf("SaveCategory failed: %v", err)
	}
	q := seedQuestion(t, s, 1, 1, "space")

	slug := "space"
	in := &session.TriviaSession{
		ID:             "s-1",
		Mode:           attempt.ModeCategory,
		CategorySlug:   &slug,
		Locale:         "en",
		TotalQuestions: 1,
		CorrectAnswers: 1,
		Elapsed:        42 * time.Second,
		BestStreak:     1,
		CompletedAt:    time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Transcript: session.Transcript{
			Questions: []session.QuestionSnapshot{session.Snapshot(q, q.Options())},
			Answers:   map[int64]string{1: "A"},
		},
	}
	if err := s.SaveSession(ctx, in); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	got, err := s.GetSession(ctx, "s-1")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.Elapsed != 42*time.Second {
		t.Errorf("expected elapsed 42s, got %v", got.Elapsed)
	}
	if got.Category == nil || got.Category.Name != "Space" {
		t.Errorf("expected category Space, got %+v", got.Category)
	}
	if got.TranscriptCorrupt {
		t.Error("expected transcript to decode")
	}
	if got.Transcript.Answers[1] != "A" {
		t.Errorf("expected answer 'A', got %q", got.Transcript.Answers[1])
	}
}

func TestListSessions_MostRecentFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		ts := &session.TriviaSession{
			ID: id, Mode: attempt.ModeMixed, Locale: "en",
			CompletedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := s.SaveSession(ctx, ts); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}
	}

	recent, err := s.ListSessions(ctx, 2)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != "c" || recent[1].ID != "b" {
		t.Errorf("expected [c b], got %d sessions", len(recent))
	}

	all, err := s.ListSessions(ctx, 0)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 sessions, got %d", len(all))
	}

	n, err := s.CountSessionsSince(ctx, base.Add(time.Hour))
	if err != nil {
		t.Fatalf("CountSessionsSince failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 sessions since, got %d", n)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetSession(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetSession_CorruptTranscript(t *testing.T) {
	s := newTestStore(t)

	err := store.ExecRaw(s, `
		INSERT INTO trivia_sessions (id, mode, locale, total_questions, correct_answers, elapsed_ms, best_streak, completed_at, transcript)
		VALUES ('broken', 'mixed', 'en', 10, 6, 1000, 3, 0, X'7B6E6F74206A736F6E')
	`)
	if err != nil {
		t.Fatalf("failed to plant session: %v", err)
	}

	got, err := s.GetSession(context.Background(), "broken")
	if err != nil {
		t.Fatalf("expected corrupt transcript to be tolerated, got %v", err)
	}
	if !got.TranscriptCorrupt {
		t.Error("expected TranscriptCorrupt to be set")
	}
	if !got.Transcript.Empty() {
		t.Errorf("expected empty transcript, got %+v", got.Transcript)
	}
	if got.TotalQuestions != 10 || got.CorrectAnswers != 6 || got.BestStreak != 3 {
		t.Errorf("expected scalar fields 10/6/3, got %d/%d/%d", got.TotalQuestions, got.CorrectAnswers, got.BestStreak)
	}
}

func TestMigrate_AddsLocaleToOldDatabases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")
	s, err := store.NewSQLite(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	s.Close()

	// Reopening runs the migration again; it must be a no-op.
	s, err = store.NewSQLite(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	s.Close()
}

func TestSession_ElapsedKeepsFullPrecision(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in := &session.TriviaSession{
		ID:          "s-precise",
		Mode:        attempt.ModeMixed,
		Locale:      "en",
		Elapsed:     1500*time.Microsecond + 7,
		CompletedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := s.SaveSession(ctx, in); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	got, err := s.GetSession(ctx, "s-precise")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.Elapsed != in.Elapsed {
		t.Errorf("expected elapsed %v, got %v", in.Elapsed, got.Elapsed)
	}
}

func TestGetSession_ElapsedFromMillisecondsOnly(t *testing.T) {
	s := newTestStore(t)

	err := store.ExecRaw(s, `
		INSERT INTO trivia_sessions (id, mode, locale, total_questions, correct_answers, elapsed_ms, best_streak, completed_at)
		VALUES ('old', 'mixed', 'en', 10, 6, 1500, 3, 0)
	`)
	if err != nil {
		t.Fatalf("failed to plant session: %v", err)
	}

	got, err := s.GetSession(context.Background(), "old")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.Elapsed != 1500*time.Millisecond {
		t.Errorf("expected elapsed 1.5s, got %v", got.Elapsed)
	}
}

func TestIDLookups_LargerThanParameterLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedQuestion(t, s, 1, 1, "space")
	seedQuestion(t, s, 1150, 1150, "space")

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, qid := range []int64{1, 1150} {
		if err := s.SaveAttempt(ctx, attempt.New(qid, true, attempt.ModeMixed, nil, base)); err != nil {
			t.Fatalf("SaveAttempt failed: %v", err)
		}
	}

	ids := make([]int64, 1200)
	for i := range ids {
		ids[i] = int64(1200 - i)
	}

	histories, err := s.AttemptHistories(ctx, ids)
	if err != nil {
		t.Fatalf("AttemptHistories failed: %v", err)
	}
	if len(histories) != 2 || len(histories[1150]) != 1 {
		t.Errorf("expected histories for questions 1 and 1150, got %v", histories)
	}

	existing, err := s.ExistingQuestionIDs(ctx, ids)
	if err != nil {
		t.Fatalf("ExistingQuestionIDs failed: %v", err)
	}
	if len(existing) != 2 {
		t.Errorf("expected 2 existing questions, got %v", existing)
	}

	qs, err := s.QuestionsByIDs(ctx, ids)
	if err != nil {
		t.Fatalf("QuestionsByIDs failed: %v", err)
	}
	if len(qs) != 2 || qs[0].ID != 1 || qs[1].ID != 1150 {
		t.Errorf("expected questions 1 and 1150 in id order, got %+v", qs)
	}
}

func TestAttemptTotals_ScopedToLocale(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedQuestion(t, s, 1, 1, "space")
	de := question.Question{
		ID:            2,
		FactID:        2,
		CategorySlug:  "weltraum",
		Locale:        "de",
		Text:          "Frage?",
		Type:          question.TypeTrueFalse,
		CorrectAnswer: "true",
	}
	if err := s.SaveQuestion(ctx, de); err != nil {
		t.Fatalf("SaveQuestion failed: %v", err)
	}

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, a := range []*attempt.Attempt{
		attempt.New(1, true, attempt.ModeMixed, nil, base),
		attempt.New(2, false, attempt.ModeMixed, nil, base),
		attempt.New(2, false, attempt.ModeMixed, nil, base.Add(time.Hour)),
	} {
		if err := s.SaveAttempt(ctx, a); err != nil {
			t.Fatalf("SaveAttempt failed: %v", err)
		}
	}

	totals, err := s.AttemptTotals(ctx, "en")
	if err != nil {
		t.Fatalf("AttemptTotals failed: %v", err)
	}
	if totals.Answered != 1 || totals.Correct != 1 {
		t.Errorf("expected en totals 1/1, got %+v", totals)
	}

	since, err := s.AttemptTotalsSince(ctx, "de", base.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("AttemptTotalsSince failed: %v", err)
	}
	if since.Answered != 1 || since.Correct != 0 {
		t.Errorf("expected de totals since 1/0, got %+v", since)
	}

	histories, err := s.LocaleAttemptHistories(ctx, "de")
	if err != nil {
		t.Fatalf("LocaleAttemptHistories failed: %v", err)
	}
	if len(histories) != 1 || len(histories[2]) != 2 {
		t.Errorf("expected two de attempts on question 2, got %v", histories)
	}
}
