package quiz

import (
	"time"

	"emaster/internal/domain"
)

// Outcomes reduces results to (word key, correct) pairs
func Outcomes(results []Result) []domain.Outcome {
	out := make([]domain.Outcome, 0, len(results))
	for _, r := range results {
		out = append(out, domain.Outcome{Key: r.Word.Key(), Correct: r.Correct})
	}
	return out
}

// ApplyOutcomes returns a copy of words with session outcomes folded into the
// stats. Every word whose (section, id) matches an outcome in the given
// section gets one more attempt, and one more correct answer if any outcome
// for that key was correct. Other words are copied unchanged.
func ApplyOutcomes(words []domain.Word, section domain.Section, outcomes []domain.Outcome) []domain.Word {
	correctByKey := make(map[domain.WordKey]bool, len(outcomes))
	for _, o := range outcomes {
		if o.Key.Section != section {
			continue
		}
		correctByKey[o.Key] = correctByKey[o.Key] || o.Correct
	}

	updated := make([]domain.Word, len(words))
	for i, w := range words {
		updated[i] = w
		correct, touched := correctByKey[w.Key()]
		if !touched {
			continue
		}
		updated[i].Stats.Attempts++
		if correct {
			updated[i].Stats.Correct++
		}
	}

	return updated
}

// Record builds the history record for the answers given so far
func (s Session) Record(id string, at time.Time) domain.HistoryRecord {
	t := s.config.Type

	details := make([]domain.HistoryDetail, 0, len(s.results))
	correct := 0
	for _, r := range s.results {
		if r.Correct {
			correct++
		}
		details = append(details, domain.HistoryDetail{
			WordID:        r.Word.ID,
			Question:      t.QuestionText(r.Word),
			UserAnswer:    r.UserAnswer,
			CorrectAnswer: t.CorrectAnswer(r.Word),
			IsCorrect:     r.Correct,
		})
	}

	return domain.HistoryRecord{
		ID:              id,
		Date:            at,
		Section:         s.config.Section,
		ModeDescription: s.config.ModeDescription(),
		TotalQuestions:  len(details),
		CorrectCount:    correct,
		Details:         details,
	}
}
