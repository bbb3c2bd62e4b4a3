package session

import (
	"time"

	"github.com/remaimber-it/trivia/internal/domain/attempt"
	"github.com/remaimber-it/trivia/internal/domain/category"
)

// TriviaSession is a completed quiz. It is written once and never modified.
type TriviaSession struct {
	ID             string
	Mode           attempt.Mode
	CategorySlug   *string
	Locale         string
	TotalQuestions int
	CorrectAnswers int
	Elapsed        time.Duration
	BestStreak     int // longest run of correct answers inside the quiz
	CompletedAt    time.Time
	Transcript     Transcript

	// Filled on read.
	Category               *category.Category // nil for uncategorised modes or unknown slugs
	TranscriptCorrupt      bool               // stored blob could not be parsed
	UnavailableQuestionIDs []int64            // transcript questions no longer in the catalog
}

// ReplayAvailable reports whether the results screen can be rebuilt.
func (s *TriviaSession) ReplayAvailable() bool {
	return !s.TranscriptCorrupt && len(s.Transcript.Questions) > 0
}

// Result is what a finished game hands to the session store.
type Result struct {
	ID             string // optional; generated when empty
	Mode           attempt.Mode
	CategorySlug   *string
	Locale         string
	TotalQuestions int
	CorrectAnswers int
	Elapsed        time.Duration
	BestStreak     int
	Questions      []QuestionSnapshot
	Answers        map[int64]string
}
