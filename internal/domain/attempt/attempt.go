package attempt

import "time"

// Attempt is one answer submission. Attempts are only ever appended.
type Attempt struct {
	ID         int64
	QuestionID int64
	AnsweredAt time.Time
	Correct    bool
	Mode       Mode
	SessionID  *string
}

func New(questionID int64, correct bool, mode Mode, sessionID *string, at time.Time) *Attempt {
	return &Attempt{
		QuestionID: questionID,
		AnsweredAt: at,
		Correct:    correct,
		Mode:       mode,
		SessionID:  sessionID,
	}
}

// Summary condenses one question's attempt history.
type Summary struct {
	QuestionID     int64
	TimesAnswered  int
	TimesCorrect   int
	LastAnsweredAt time.Time // zero when never answered
	LastCorrect    bool
}

// Summarize expects history ordered oldest first.
func Summarize(questionID int64, history []Attempt) Summary {
	s := Summary{QuestionID: questionID, TimesAnswered: len(history)}
	for _, a := range history {
		if a.Correct {
			s.TimesCorrect++
		}
	}
	if n := len(history); n > 0 {
		s.LastAnsweredAt = history[n-1].AnsweredAt
		s.LastCorrect = history[n-1].Correct
	}
	return s
}
