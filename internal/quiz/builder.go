package quiz

import (
	"sort"

	"emaster/internal/domain"
)

// BuildQuestionSet derives the ordered question list for a session.
// Each stage filters the output of the previous one; the limit applies after
// ordering so RANDOM and ACCURACY_ASC pick from the whole filtered pool.
// The input slice is not modified. An empty result is a valid value.
func BuildQuestionSet(words []domain.Word, cfg domain.QuizConfig, rng Rand) []domain.Word {
	questions := make([]domain.Word, 0, len(words))
	for _, w := range words {
		if matches(w, cfg) {
			questions = append(questions, w)
		}
	}

	switch cfg.Order {
	case domain.OrderRandom:
		questions = shuffled(rng, questions)
	case domain.OrderAccuracyAsc:
		sort.SliceStable(questions, func(i, j int) bool {
			return questions[i].Stats.Accuracy() < questions[j].Stats.Accuracy()
		})
	default:
		sort.SliceStable(questions, func(i, j int) bool {
			return questions[i].ID < questions[j].ID
		})
	}

	if cfg.Limit > 0 && cfg.Limit < len(questions) {
		questions = questions[:cfg.Limit]
	}

	return questions
}

func matches(w domain.Word, cfg domain.QuizConfig) bool {
	if w.Section != cfg.Section {
		return false
	}
	if cfg.ScrambleCategory != "" && w.ScrambleCategory != cfg.ScrambleCategory {
		return false
	}
	if len(cfg.IDRanges) > 0 && !inAnyRange(w.ID, cfg.IDRanges) {
		return false
	}
	if cfg.OnlyReview && !w.Stats.NeedsReview() {
		return false
	}
	return true
}

// ranges may overlap; they are not merged
func inAnyRange(id int, ranges []domain.IDRange) bool {
	for _, r := range ranges {
		if r.Contains(id) {
			return true
		}
	}
	return false
}
