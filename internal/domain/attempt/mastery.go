package attempt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownPolicy = errors.New("attempt: unknown mastery policy")

// Policy decides from a question's attempt history (oldest first) whether
// the question is mastered. Mastery is always derived, never stored.
type Policy func(history []Attempt) bool

// LatestCorrect: the most recent attempt is correct.
func LatestCorrect(history []Attempt) bool {
	n := len(history)
	return n > 0 && history[n-1].Correct
}

// ConsecutiveCorrect: the last n attempts are all correct.
func ConsecutiveCorrect(n int) Policy {
	if n < 1 {
		n = 1
	}
	return func(history []Attempt) bool {
		if len(history) < n {
			return false
		}
		for _, a := range history[len(history)-n:] {
			if !a.Correct {
				return false
			}
		}
		return true
	}
}

// LifetimeMajority: strictly more than half of all attempts are correct.
func LifetimeMajority(history []Attempt) bool {
	correct := 0
	for _, a := range history {
		if a.Correct {
			correct++
		}
	}
	return correct*2 > len(history)
}

// PolicyByName resolves a configured policy name:
// "latest_correct", "lifetime_majority" or "consecutive_correct:N".
func PolicyByName(name string) (Policy, error) {
	name = strings.TrimSpace(name)
	switch name {
	case "", "latest_correct":
		return LatestCorrect, nil
	case "lifetime_majority":
		return LifetimeMajority, nil
	}
	if rest, ok := strings.CutPrefix(name, "consecutive_correct:"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
		}
		return ConsecutiveCorrect(n), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}
