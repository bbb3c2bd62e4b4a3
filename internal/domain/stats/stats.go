// Package stats holds the pure arithmetic behind the summary screens.
// Ratios stay unrounded; only Percent rounds, and only for display.
package stats

import (
	"math"
	"time"
)

// DefaultSessionSize is the question cap of a single quiz.
const DefaultSessionSize = 10

// Ratio returns part/whole, or 0 when whole is not positive.
func Ratio(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

// PercentOf rounds a ratio to the nearest whole percentage, clamped to [0, 100].
func PercentOf(ratio float64) int {
	p := int(math.Round(ratio * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Percent is PercentOf(Ratio(part, whole)).
func Percent(part, whole int) int {
	return PercentOf(Ratio(part, whole))
}

// EstimateTestsTaken approximates the number of quizzes from the number of
// answers when no session count is available.
func EstimateTestsTaken(answered, sessionSize int) int {
	if answered <= 0 {
		return 0
	}
	if sessionSize <= 0 {
		sessionSize = DefaultSessionSize
	}
	return (answered + sessionSize - 1) / sessionSize
}

// WeekStart returns Monday 00:00 of the week containing t, in t's location.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// DayStart returns 00:00 of the day containing t, in t's location.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Overall is the summary shown on the statistics screen.
type Overall struct {
	TotalAnswered int
	TotalCorrect  int
	CurrentStreak int
	BestStreak    int
	TotalMastered int
	TestsTaken    int
	TestsThisWeek int
	MasteredToday int
	CorrectToday  int
}

// AccuracyRatio is TotalCorrect / TotalAnswered, unrounded.
func (o Overall) AccuracyRatio() float64 {
	return Ratio(o.TotalCorrect, o.TotalAnswered)
}

// Accuracy is the display percentage of AccuracyRatio.
func (o Overall) Accuracy() int {
	return PercentOf(o.AccuracyRatio())
}
