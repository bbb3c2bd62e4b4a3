package attempt_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/remaimber-it/trivia/internal/domain/attempt"
)

var t0 = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func history(results ...bool) []attempt.Attempt {
	out := make([]attempt.Attempt, len(results))
	for i, ok := range results {
		out[i] = *attempt.New(1, ok, attempt.ModeCategory, nil, t0.Add(time.Duration(i)*time.Minute))
	}
	return out
}

func TestLatestCorrect(t *testing.T) {
	tests := []struct {
		name    string
		history []attempt.Attempt
		want    bool
	}{
		{"no attempts", history(), false},
		{"single correct", history(true), true},
		{"wrong after correct", history(true, false), false},
		{"correct after wrong", history(false, false, true), true},
	}
	for _, tt := range tests {
		if got := attempt.LatestCorrect(tt.history); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestConsecutiveCorrect(t *testing.T) {
	p := attempt.ConsecutiveCorrect(2)

	if p(history(true)) {
		t.Error("expected one correct answer to be insufficient")
	}
	if !p(history(false, true, true)) {
		t.Error("expected two trailing correct answers to master")
	}
	if p(history(true, true, false)) {
		t.Error("expected trailing wrong answer to break mastery")
	}
}

func TestLifetimeMajority(t *testing.T) {
	if attempt.LifetimeMajority(history(true, false)) {
		t.Error("expected a tie not to be a majority")
	}
	if !attempt.LifetimeMajority(history(true, false, true)) {
		t.Error("expected 2/3 to be a majority")
	}
}

func TestPolicyByName(t *testing.T) {
	for _, name := range []string{"", "latest_correct", "lifetime_majority", "consecutive_correct:3"} {
		if _, err := attempt.PolicyByName(name); err != nil {
			t.Errorf("PolicyByName(%q): unexpected error %v", name, err)
		}
	}
	for _, name := range []string{"always", "consecutive_correct:0", "consecutive_correct:x"} {
		_, err := attempt.PolicyByName(name)
		if !errors.Is(err, attempt.ErrUnknownPolicy) {
			t.Errorf("PolicyByName(%q): expected ErrUnknownPolicy, got %v", name, err)
		}
	}
}

func TestSummarize(t *testing.T) {
	h := history(false, true, true)
	s := attempt.Summarize(1, h)

	if s.TimesAnswered != 3 || s.TimesCorrect != 2 {
		t.Errorf("expected 3 answered / 2 correct, got %d/%d", s.TimesAnswered, s.TimesCorrect)
	}
	if !s.LastAnsweredAt.Equal(h[2].AnsweredAt) || !s.LastCorrect {
		t.Errorf("unexpected last attempt %v %v", s.LastAnsweredAt, s.LastCorrect)
	}
	if !attempt.Summarize(2, nil).LastAnsweredAt.IsZero() {
		t.Error("expected zero time for unanswered question")
	}
}

func TestMode_JSON(t *testing.T) {
	b, err := json.Marshal(attempt.ModeDaily)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"daily"` {
		t.Errorf("got %s", b)
	}

	var m attempt.Mode
	if err := json.Unmarshal([]byte(`"weekly"`), &m); !errors.Is(err, attempt.ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
}
