package quiz

import (
	"fmt"

	"emaster/internal/domain"
)

// Placeholder fills option slots when the section has too few words
const Placeholder = "---"

// OptionCount is the size of every multiple-choice option set
const OptionCount = 4

// GenerateOptions builds the option set for a multiple-choice question.
// GAP_FILL_MCQ uses the authored distractors; the MCQ_4 types sample three
// other words of the same section. Typed quiz types have no options.
func GenerateOptions(question domain.Word, pool []domain.Word, t domain.QuizType, rng Rand) ([]string, error) {
	switch {
	case t.UsesFixedDistractors():
		return fixedOptions(question, rng)
	case t.IsMultipleChoice():
		return sampledOptions(question, pool, t, rng), nil
	}
	return nil, nil
}

func fixedOptions(question domain.Word, rng Rand) ([]string, error) {
	if err := checkDistractors(question); err != nil {
		return nil, err
	}

	opts := make([]string, 0, len(question.Distractors)+1)
	opts = append(opts, question.Distractors...)
	opts = append(opts, question.English)

	return shuffled(rng, opts), nil
}

// checkDistractors requires exactly three distinct distractors, none of them
// the answer itself
func checkDistractors(question domain.Word) error {
	if len(question.Distractors) != OptionCount-1 {
		return fmt.Errorf("%w: %s #%d has %d", domain.ErrMissingDistractors,
			question.Section, question.ID, len(question.Distractors))
	}

	seen := map[string]bool{question.English: true}
	for _, d := range question.Distractors {
		if seen[d] {
			return fmt.Errorf("%w: %s #%d repeats %q", domain.ErrMissingDistractors,
				question.Section, question.ID, d)
		}
		seen[d] = true
	}
	return nil
}

func sampledOptions(question domain.Word, pool []domain.Word, t domain.QuizType, rng Rand) []string {
	correct := t.CorrectAnswer(question)

	candidates := make([]domain.Word, 0, len(pool))
	for _, w := range pool {
		if w.Section == question.Section && w.ID != question.ID {
			candidates = append(candidates, w)
		}
	}

	seen := map[string]bool{correct: true}
	opts := make([]string, 0, OptionCount)
	for _, w := range shuffled(rng, candidates) {
		if len(opts) == OptionCount-1 {
			break
		}
		text := t.CorrectAnswer(w)
		if seen[text] {
			continue
		}
		seen[text] = true
		opts = append(opts, text)
	}

	for len(opts) < OptionCount-1 {
		opts = append(opts, Placeholder)
	}
	opts = append(opts, correct)

	return shuffled(rng, opts)
}
