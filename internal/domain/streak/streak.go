package streak

import (
	"sort"
	"time"
)

// DateLayout is the calendar-day key of daily progress rows.
const DateLayout = "2006-01-02"

// DailyProgress is the single record kept per calendar day.
type DailyProgress struct {
	Date           string // YYYY-MM-DD, local calendar
	TotalQuestions int
	CorrectAnswers int
	CompletedAt    *time.Time // nil until the daily set is fully answered
}

func (p DailyProgress) Completed() bool {
	return p.CompletedAt != nil
}

// DateOf formats t as a calendar day in loc.
func DateOf(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DateLayout)
}

// PreviousDay returns the day before date, or "" when date is malformed.
func PreviousDay(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, -1).Format(DateLayout)
}

// Current counts consecutive completed days ending today, or yesterday
// when today is not completed yet. A missed day resets the count to 0.
func Current(completed []string, today string) int {
	days := make(map[string]bool, len(completed))
	for _, d := range completed {
		days[d] = true
	}

	day := today
	if !days[day] {
		day = PreviousDay(today)
	}

	n := 0
	for day != "" && days[day] {
		n++
		day = PreviousDay(day)
	}
	return n
}

// Longest returns the longest run of consecutive days in completed.
func Longest(completed []string) int {
	if len(completed) == 0 {
		return 0
	}
	days := make([]string, len(completed))
	copy(days, completed)
	sort.Strings(days)

	best, run := 0, 0
	prev := ""
	for _, d := range days {
		switch {
		case d == prev:
			continue
		case prev != "" && PreviousDay(d) == prev:
			run++
		default:
			run = 1
		}
		if run > best {
			best = run
		}
		prev = d
	}
	return best
}
