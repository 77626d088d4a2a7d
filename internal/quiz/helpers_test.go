package quiz

import (
	"fmt"

	"emaster/internal/domain"
)

// fixedRand never reorders anything
type fixedRand struct{}

func (fixedRand) Intn(int) int                { return 0 }
func (fixedRand) Shuffle(int, func(i, j int)) {}

type recordingSpeaker struct {
	texts []string
}

func (s *recordingSpeaker) Speak(text, locale string) {
	s.texts = append(s.texts, text+"@"+locale)
}

func sectionWords(section domain.Section, n int) []domain.Word {
	words := make([]domain.Word, 0, n)
	for i := 1; i <= n; i++ {
		words = append(words, domain.Word{
			ID:       i,
			English:  fmt.Sprintf("%s-en-%d", section, i),
			Japanese: fmt.Sprintf("%s-jp-%d", section, i),
			Section:  section,
		})
	}
	return words
}

func ids(words []domain.Word) []int {
	out := make([]int, 0, len(words))
	for _, w := range words {
		out = append(out, w.ID)
	}
	return out
}
