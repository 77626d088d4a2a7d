package testutil

import (
	"fmt"
	"time"

	"emaster/internal/domain"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewObservedLogger creates a logger whose entries can be inspected
func NewObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

// NewTestWord creates a test word with distinct texts and three distractors
func NewTestWord(section domain.Section, id int) domain.Word {
	return domain.Word{
		ID:          id,
		Section:     section,
		English:     fmt.Sprintf("%s-en-%d", section, id),
		Japanese:    fmt.Sprintf("%s-jp-%d", section, id),
		Sentence:    fmt.Sprintf("I said %s-en-%d twice.", section, id),
		Distractors: []string{"alpha", "beta", "gamma"},
	}
}

// NewTestWords creates words with ids 1..n in one section
func NewTestWords(section domain.Section, n int) []domain.Word {
	words := make([]domain.Word, 0, n)
	for i := 1; i <= n; i++ {
		words = append(words, NewTestWord(section, i))
	}
	return words
}

// NewTestRecord creates a history record with the given score
func NewTestRecord(id string, date time.Time, total, correct int) domain.HistoryRecord {
	details := make([]domain.HistoryDetail, 0, total)
	for i := 1; i <= total; i++ {
		details = append(details, domain.HistoryDetail{
			WordID:        i,
			Question:      fmt.Sprintf("q%d", i),
			UserAnswer:    fmt.Sprintf("a%d", i),
			CorrectAnswer: fmt.Sprintf("a%d", i),
			IsCorrect:     i <= correct,
		})
	}
	return domain.HistoryRecord{
		ID:              id,
		Date:            date,
		Section:         domain.SectionLeap,
		ModeDescription: "MCQ_4_ENG_TO_JP - SEQUENTIAL",
		TotalQuestions:  total,
		CorrectCount:    correct,
		Details:         details,
	}
}
