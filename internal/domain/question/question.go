package question

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

type Type string

const (
	TypeMultipleChoice Type = "multiple_choice"
	TypeTrueFalse      Type = "true_false"
)

// True/false questions are always presented in this order.
const (
	AnswerTrue  = "True"
	AnswerFalse = "False"
)

var ErrInvalidType = errors.New("question: invalid type")

func (t Type) Valid() bool {
	return t == TypeMultipleChoice || t == TypeTrueFalse
}

func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

// Question is an immutable catalog item. The engine never mutates it.
type Question struct {
	ID            int64
	FactID        int64
	CategorySlug  string
	Locale        string
	Text          string
	Type          Type
	CorrectAnswer string
	WrongAnswers  []string // empty for true/false
	Explanation   *string
}

// Validate checks the invariants the catalog import relies on.
func (q Question) Validate() error {
	if q.ID <= 0 {
		return errors.New("question id must be positive")
	}
	if q.Text == "" {
		return errors.New("question text cannot be empty")
	}
	if q.CategorySlug == "" {
		return errors.New("question category cannot be empty")
	}
	switch q.Type {
	case TypeTrueFalse:
		if !strings.EqualFold(q.CorrectAnswer, AnswerTrue) && !strings.EqualFold(q.CorrectAnswer, AnswerFalse) {
			return fmt.Errorf("true/false question %d has answer %q", q.ID, q.CorrectAnswer)
		}
	case TypeMultipleChoice:
		if q.CorrectAnswer == "" {
			return errors.New("correct answer cannot be empty")
		}
		if len(q.WrongAnswers) == 0 {
			return fmt.Errorf("multiple choice question %d has no wrong answers", q.ID)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidType, q.Type)
	}
	return nil
}

// Options returns the answers in catalog order: the correct answer first,
// then the wrong answers. True/false questions always yield [True, False].
func (q Question) Options() []string {
	if q.Type == TypeTrueFalse {
		return []string{AnswerTrue, AnswerFalse}
	}
	options := make([]string, 0, len(q.WrongAnswers)+1)
	options = append(options, q.CorrectAnswer)
	options = append(options, q.WrongAnswers...)
	return options
}

// IsCorrect compares a chosen answer against the catalog answer.
// True/false is case-insensitive; multiple choice must match exactly.
func (q Question) IsCorrect(answer string) bool {
	if q.Type == TypeTrueFalse {
		return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.CorrectAnswer))
	}
	return answer == q.CorrectAnswer
}

// ShuffledAnswers returns the options in presentation order. Multiple choice
// answers get a uniform Fisher–Yates shuffle; true/false is never shuffled.
// A nil rng uses the global source.
func ShuffledAnswers(q Question, rng *rand.Rand) []string {
	options := q.Options()
	if q.Type == TypeTrueFalse {
		return options
	}
	swap := func(i, j int) { options[i], options[j] = options[j], options[i] }
	if rng != nil {
		rng.Shuffle(len(options), swap)
	} else {
		rand.Shuffle(len(options), swap)
	}
	return options
}

// IDs returns the ids of qs in order.
func IDs(qs []Question) []int64 {
	ids := make([]int64, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}
