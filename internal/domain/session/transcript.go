package session

import (
	"encoding/json"
	"strconv"

	"github.com/remaimber-it/trivia/internal/domain/question"
)

// QuestionSnapshot is a denormalised copy of a question as it was played,
// so a transcript replays even after the catalog drops the question.
type QuestionSnapshot struct {
	ID            int64    `json:"id"`
	FactID        int64    `json:"fact_id"`
	CategorySlug  string   `json:"category_slug"`
	Text          string   `json:"text"`
	Type          string   `json:"type"`
	CorrectAnswer string   `json:"correct_answer"`
	WrongAnswers  []string `json:"wrong_answers,omitempty"`
	Explanation   *string  `json:"explanation,omitempty"`
	Presented     []string `json:"presented,omitempty"` // answer order shown to the learner
}

func Snapshot(q question.Question, presented []string) QuestionSnapshot {
	return QuestionSnapshot{
		ID:            q.ID,
		FactID:        q.FactID,
		CategorySlug:  q.CategorySlug,
		Text:          q.Text,
		Type:          string(q.Type),
		CorrectAnswer: q.CorrectAnswer,
		WrongAnswers:  append([]string(nil), q.WrongAnswers...),
		Explanation:   q.Explanation,
		Presented:     append([]string(nil), presented...),
	}
}

// Question rebuilds the catalog question from the snapshot.
func (s QuestionSnapshot) Question(locale string) question.Question {
	return question.Question{
		ID:            s.ID,
		FactID:        s.FactID,
		CategorySlug:  s.CategorySlug,
		Locale:        locale,
		Text:          s.Text,
		Type:          question.Type(s.Type),
		CorrectAnswer: s.CorrectAnswer,
		WrongAnswers:  append([]string(nil), s.WrongAnswers...),
		Explanation:   s.Explanation,
	}
}

// Transcript is the replayable record of one quiz.
type Transcript struct {
	Questions []QuestionSnapshot
	Answers   map[int64]string // question id → chosen answer
}

// Empty reports whether there is nothing to replay.
func (t Transcript) Empty() bool {
	return len(t.Questions) == 0 && len(t.Answers) == 0
}

// QuestionIDs lists the snapshot ids in play order.
func (t Transcript) QuestionIDs() []int64 {
	ids := make([]int64, len(t.Questions))
	for i, q := range t.Questions {
		ids[i] = q.ID
	}
	return ids
}

type transcriptJSON struct {
	Questions []QuestionSnapshot `json:"questions"`
	Answers   map[string]string  `json:"answers"`
}

// EncodeTranscript serialises t for the trivia_sessions blob column.
func EncodeTranscript(t Transcript) ([]byte, error) {
	out := transcriptJSON{
		Questions: t.Questions,
		Answers:   make(map[string]string, len(t.Answers)),
	}
	if out.Questions == nil {
		out.Questions = []QuestionSnapshot{}
	}
	for id, answer := range t.Answers {
		out.Answers[strconv.FormatInt(id, 10)] = answer
	}
	return json.Marshal(out)
}

// DecodeTranscript parses a stored blob. It never fails: an empty,
// corrupted or unparseable blob yields an empty transcript and ok=false.
func DecodeTranscript(blob []byte) (t Transcript, ok bool) {
	empty := Transcript{Answers: map[int64]string{}}
	if len(blob) == 0 {
		return empty, false
	}

	var in transcriptJSON
	if err := json.Unmarshal(blob, &in); err != nil {
		return empty, false
	}

	answers := make(map[int64]string, len(in.Answers))
	for key, answer := range in.Answers {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return empty, false
		}
		answers[id] = answer
	}
	return Transcript{Questions: in.Questions, Answers: answers}, true
}
