package streak_test

import (
	"testing"
	"time"

	"github.com/remaimber-it/trivia/internal/domain/streak"
)

func TestCurrent(t *testing.T) {
	tests := []struct {
		name      string
		completed []string
		today     string
		want      int
	}{
		{"nothing", nil, "2026-10-18", 0},
		{"today only", []string{"2026-10-18"}, "2026-10-18", 1},
		{"today still open", []string{"2026-10-16", "2026-10-17"}, "2026-10-18", 2},
		{"run through today", []string{"2026-10-16", "2026-10-17", "2026-10-18"}, "2026-10-18", 3},
		{"missed yesterday", []string{"2026-10-15", "2026-10-16"}, "2026-10-18", 0},
		{"gap restarts", []string{"2026-10-10", "2026-10-11", "2026-10-17", "2026-10-18"}, "2026-10-18", 2},
		{"across month boundary", []string{"2026-09-30", "2026-10-01"}, "2026-10-01", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := streak.Current(tt.completed, tt.today); got != tt.want {
				t.Errorf("Current() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrent_CompletingNextDayIncrements(t *testing.T) {
	completed := []string{"2026-10-15", "2026-10-16"}
	before := streak.Current(completed, "2026-10-16")

	completed = append(completed, "2026-10-17")
	after := streak.Current(completed, "2026-10-17")

	if after != before+1 {
		t.Errorf("expected %d, got %d", before+1, after)
	}
}

func TestCurrent_SkippedDayRestartsAtOne(t *testing.T) {
	completed := []string{"2026-10-14", "2026-10-15", "2026-10-17"}

	if got := streak.Current(completed, "2026-10-17"); got != 1 {
		t.Errorf("expected a new run of 1, got %d", got)
	}
}

func TestLongest(t *testing.T) {
	completed := []string{"2026-10-01", "2026-10-02", "2026-10-03", "2026-10-10", "2026-10-11", "2026-10-02"}

	if got := streak.Longest(completed); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if streak.Longest(nil) != 0 {
		t.Error("expected 0 for empty history")
	}
}

func TestDateOf_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2026, 10, 17, 22, 30, 0, 0, time.UTC)

	if got := streak.DateOf(ts, loc); got != "2026-10-18" {
		t.Errorf("expected local date 2026-10-18, got %s", got)
	}
	if got := streak.DateOf(ts, time.UTC); got != "2026-10-17" {
		t.Errorf("expected UTC date 2026-10-17, got %s", got)
	}
}

func TestDailyProgress_Completed(t *testing.T) {
	p := streak.DailyProgress{Date: "2026-10-18", TotalQuestions: 10}
	if p.Completed() {
		t.Error("expected open day not to be completed")
	}
	now := time.Now()
	p.CompletedAt = &now
	if !p.Completed() {
		t.Error("expected completed day")
	}
}
