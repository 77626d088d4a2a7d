package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"emaster/internal/domain"
	"emaster/internal/quiz"
	"emaster/internal/service"
)

const (
	wordsPageSize     = 15
	maxDetailLines    = 40
	maxMessageRunes   = 3500
	mainMenuText      = "🏠 Main menu\n\nChoose a section or an action:"
	passwordPrompt    = "🔒 This bot is private. Send the password to continue:"
	genericErrorText  = "Something went wrong. Please try again later."
	staleQuestionText = "This question is no longer active"
)

func sectionTitle(s domain.Section) string {
	switch s {
	case domain.SectionLeap:
		return "📘 LEAP"
	case domain.SectionTarget:
		return "📗 TARGET"
	case domain.SectionScramble:
		return "🧩 SCRAMBLE"
	}
	return string(s)
}

func quizTypeLabel(t domain.QuizType) string {
	switch t {
	case domain.QuizMCQEngToJp:
		return "EN → JP (4 choices)"
	case domain.QuizMCQJpToEng:
		return "JP → EN (4 choices)"
	case domain.QuizInputJpToEng:
		return "JP → EN (typed)"
	case domain.QuizGapFill:
		return "Gap fill (typed)"
	case domain.QuizGapFillMCQ:
		return "Gap fill (4 choices)"
	}
	return string(t)
}

func orderLabel(o domain.SortOrder) string {
	switch o {
	case domain.OrderSequential:
		return "🔢 In order"
	case domain.OrderRandom:
		return "🎲 Random"
	case domain.OrderAccuracyAsc:
		return "📉 Weakest first"
	}
	return string(o)
}

func sortLabel(k service.WordSortKey) string {
	switch k {
	case service.SortByEnglish:
		return "English"
	case service.SortByJapanese:
		return "Japanese"
	case service.SortByAccuracy:
		return "Accuracy"
	}
	return "ID"
}

// nextSortKey cycles through the word list orders
func nextSortKey(k service.WordSortKey) service.WordSortKey {
	switch k {
	case service.SortByID, "":
		return service.SortByEnglish
	case service.SortByEnglish:
		return service.SortByJapanese
	case service.SortByJapanese:
		return service.SortByAccuracy
	}
	return service.SortByID
}

// quizTypesFor lists the quiz types a section can serve. Only SCRAMBLE words
// carry example sentences and authored distractors.
func quizTypesFor(s domain.Section) []domain.QuizType {
	if s == domain.SectionScramble {
		return domain.QuizTypes
	}

	var out []domain.QuizType
	for _, t := range domain.QuizTypes {
		if !t.IsGapFill() {
			out = append(out, t)
		}
	}
	return out
}

// truncate cuts s to at most limit runes, marking the cut with an ellipsis
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func percent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

// parseRanges reads a list like "1-50, 80-90, 95". A bare number is a
// one-id range.
func parseRanges(text string) ([]domain.IDRange, error) {
	text = strings.NewReplacer("、", ",", "，", ",", "〜", "-", "~", "-").Replace(text)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty input", domain.ErrInvalidRange)
	}

	var ranges []domain.IDRange
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		startStr, endStr, isRange := strings.Cut(part, "-")
		if !isRange {
			endStr = startStr
		}

		start, err := strconv.Atoi(strings.TrimSpace(startStr))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidRange, startStr)
		}
		end, err := strconv.Atoi(strings.TrimSpace(endStr))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidRange, endStr)
		}

		r := domain.IDRange{Start: start, End: end}
		if start < 1 || start > end {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRange, r)
		}
		ranges = append(ranges, r)
	}

	if len(ranges) == 0 {
		return nil, fmt.Errorf("%w: empty input", domain.ErrInvalidRange)
	}
	return ranges, nil
}

func formatRanges(ranges []domain.IDRange) string {
	if len(ranges) == 0 {
		return "all"
	}
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		if r.Start == r.End {
			parts = append(parts, strconv.Itoa(r.Start))
			continue
		}
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ", ")
}

func renderSectionMenu(st *chatState) string {
	var b strings.Builder
	b.WriteString(sectionTitle(st.Section))
	b.WriteString("\n\n")
	if st.Section == domain.SectionScramble {
		category := "all"
		if st.Category != "" {
			category = string(st.Category)
		}
		fmt.Fprintf(&b, "Category: %s\n", category)
	}
	fmt.Fprintf(&b, "Ranges: %s\n\nChoose an action:", formatRanges(st.Ranges))
	return b.String()
}

func renderQuizSetup(st *chatState) string {
	title := "📝 New quiz"
	if st.Review {
		title = "🔁 Review mistakes"
	}
	if st.QuizType == "" {
		return fmt.Sprintf("%s · %s\n\nChoose the quiz type:", title, sectionTitle(st.Section))
	}
	return fmt.Sprintf("%s · %s\nType: %s\n\nChoose the order:", title, sectionTitle(st.Section), quizTypeLabel(st.QuizType))
}

// renderQuestion shows the prompt. The Japanese hint of gap-fill questions is
// only included once the learner asked for it.
func renderQuestion(s quiz.Session, showHint bool) string {
	word, ok := s.Current()
	if !ok {
		return ""
	}
	t := s.Config().Type

	var b strings.Builder
	fmt.Fprintf(&b, "❓ Question %d/%d\n\n", s.Index()+1, s.Total())
	b.WriteString(t.Prompt(word))
	if t.IsGapFill() && showHint {
		fmt.Fprintf(&b, "\n💡 %s", word.Japanese)
	}

	if t.IsInput() {
		b.WriteString("\n\n✍️ Type the English answer:")
	} else {
		b.WriteString("\n\nChoose an answer:")
	}
	return b.String()
}

func renderResult(s quiz.Session, res quiz.Result) string {
	t := s.Config().Type

	var b strings.Builder
	if res.Correct {
		b.WriteString("✅ Correct!")
	} else {
		b.WriteString("❌ Wrong.")
		fmt.Fprintf(&b, "\nYour answer: %s", res.UserAnswer)
	}
	fmt.Fprintf(&b, "\n\n%s → %s", t.QuestionText(res.Word), t.CorrectAnswer(res.Word))

	correct, answered := s.Score()
	fmt.Fprintf(&b, "\n\nScore: %d/%d", correct, answered)
	return b.String()
}

func renderSummary(record domain.HistoryRecord, saved bool) string {
	var b strings.Builder
	b.WriteString("🏁 Quiz finished\n\n")
	fmt.Fprintf(&b, "Section: %s\n", record.Section)
	fmt.Fprintf(&b, "Mode: %s\n", record.ModeDescription)
	fmt.Fprintf(&b, "Score: %d/%d (%s)", record.CorrectCount, record.TotalQuestions, percent(record.Rate()))

	var mistakes []domain.HistoryDetail
	for _, d := range record.Details {
		if !d.IsCorrect {
			mistakes = append(mistakes, d)
		}
	}
	if len(mistakes) > 0 {
		b.WriteString("\n\nMistakes:")
		for _, d := range mistakes {
			fmt.Fprintf(&b, "\n• %s → %s (you: %s)", d.Question, d.CorrectAnswer, d.UserAnswer)
		}
	}

	if !saved {
		b.WriteString("\n\n⚠️ Results could not be saved. Statistics and history were not updated.")
	}
	return b.String()
}

func renderStats(summaries []domain.SectionSummary) string {
	var b strings.Builder
	b.WriteString("📊 Statistics")
	for _, s := range summaries {
		fmt.Fprintf(&b, "\n\n%s\nWords: %d · Attempted: %d · To review: %d", sectionTitle(s.Section), s.Words, s.Attempted, s.Review)
		if s.Attempts == 0 {
			b.WriteString("\nAccuracy: -")
			continue
		}
		fmt.Fprintf(&b, "\nAccuracy: %s (%d/%d)", percent(s.Accuracy()), s.Correct, s.Attempts)
	}
	return b.String()
}

func historyLabel(r domain.HistoryRecord, now time.Time) string {
	return fmt.Sprintf("%s · %s · %d/%d", domain.DisplayDate(r.Date, now), r.Section, r.CorrectCount, r.TotalQuestions)
}

func renderHistoryList(records []domain.HistoryRecord, page, totalPages int) string {
	if len(records) == 0 {
		return "🕘 History\n\nNo quiz sessions yet."
	}
	return fmt.Sprintf("🕘 History (page %d/%d)\n\nChoose a session:", page, totalPages)
}

func renderHistoryDetail(r domain.HistoryRecord, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🗒 %s\n", domain.DisplayDate(r.Date, now))
	fmt.Fprintf(&b, "Section: %s\nMode: %s\n", r.Section, r.ModeDescription)
	fmt.Fprintf(&b, "Score: %d/%d (%s)\n", r.CorrectCount, r.TotalQuestions, percent(r.Rate()))

	for i, d := range r.Details {
		if i == maxDetailLines {
			fmt.Fprintf(&b, "\n… %d more in the CSV export", len(r.Details)-maxDetailLines)
			break
		}
		if d.IsCorrect {
			fmt.Fprintf(&b, "\n✅ %s → %s", d.Question, d.CorrectAnswer)
			continue
		}
		fmt.Fprintf(&b, "\n❌ %s → %s (you: %s)", d.Question, d.CorrectAnswer, d.UserAnswer)
	}
	return b.String()
}

// pageOf returns the slice of items shown on page and the page count
func pageOf[T any](items []T, page, size int) ([]T, int, int) {
	totalPages := (len(items) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page, totalPages
}

func renderWordList(words []domain.Word, st *chatState, page, totalPages, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 %s words (%d) · page %d/%d\n", sectionTitle(st.Section), total, page, totalPages)
	fmt.Fprintf(&b, "Sort: %s", sortLabel(st.SortBy))
	if st.Search != "" {
		fmt.Fprintf(&b, " · Search: %q", st.Search)
	}
	if st.MistakesOnly {
		b.WriteString(" · Mistakes only")
	}
	b.WriteString("\n")

	if len(words) == 0 {
		b.WriteString("\nNo words match.")
		return b.String()
	}

	for _, w := range words {
		fmt.Fprintf(&b, "\n#%d %s — %s", w.ID, w.English, w.Japanese)
		if w.Stats.Attempts == 0 {
			b.WriteString(" · not tried")
			continue
		}
		fmt.Fprintf(&b, " · %d/%d (%s)", w.Stats.Correct, w.Stats.Attempts, percent(w.Stats.Accuracy()))
	}
	return b.String()
}
