package category

import "github.com/remaimber-it/trivia/internal/domain/stats"

// Category is a catalog category. The engine treats it as read-only.
type Category struct {
	Slug   string
	Name   string
	Icon   string
	Color  string
	Locale string
}

func New(slug, name, icon, color, locale string) *Category {
	return &Category{
		Slug:   slug,
		Name:   name,
		Icon:   icon,
		Color:  color,
		Locale: locale,
	}
}

// Progress is a category together with the learner's progress in it.
type Progress struct {
	Category Category
	Mastered int // questions currently satisfying the mastery policy
	Total    int // questions in the catalog for this category
	Answered int // attempts on the category's questions
	Correct  int // correct attempts among them
}

// IsComplete reports whether every question of a non-empty category is mastered.
func (p Progress) IsComplete() bool {
	return p.Total > 0 && p.Mastered >= p.Total
}

// AccuracyRatio is Correct / Answered, not Correct / Total.
func (p Progress) AccuracyRatio() float64 {
	return stats.Ratio(p.Correct, p.Answered)
}

func (p Progress) Accuracy() int {
	return stats.PercentOf(p.AccuracyRatio())
}

// Remaining is the number of unmastered questions.
func (p Progress) Remaining() int {
	if p.Mastered >= p.Total {
		return 0
	}
	return p.Total - p.Mastered
}
