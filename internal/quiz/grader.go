package quiz

import (
	"strings"

	"emaster/internal/domain"
)

// Grade decides whether answer is correct for the question.
// Multiple-choice types compare exactly; typed types compare trimmed and
// lower-cased. Callers must not grade an empty typed answer.
func Grade(t domain.QuizType, question domain.Word, answer string) bool {
	switch t {
	case domain.QuizMCQEngToJp:
		return answer == question.Japanese
	case domain.QuizMCQJpToEng, domain.QuizGapFillMCQ:
		return answer == question.English
	case domain.QuizInputJpToEng, domain.QuizGapFill:
		return normalize(answer) == normalize(question.English)
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
