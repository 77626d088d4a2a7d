package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizConfig_ModeDescription(t *testing.T) {
	tests := []struct {
		name     string
		config   QuizConfig
		expected string
	}{
		{
			name:     "no limit",
			config:   QuizConfig{Type: QuizMCQEngToJp, Order: OrderSequential},
			expected: "MCQ_4_ENG_TO_JP - SEQUENTIAL",
		},
		{
			name:     "with limit",
			config:   QuizConfig{Type: QuizInputJpToEng, Order: OrderRandom, Limit: 10},
			expected: "INPUT_JP_TO_ENG - RANDOM (Limit: 10)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.ModeDescription())
		})
	}
}

func TestQuizConfig_Validate(t *testing.T) {
	valid := QuizConfig{Section: SectionLeap, Type: QuizMCQEngToJp, Order: OrderSequential}
	assert.NoError(t, valid.Validate())

	badSection := valid
	badSection.Section = "HOME"
	assert.Error(t, badSection.Validate())

	badType := valid
	badType.Type = "MCQ_FIXED_ENG"
	assert.Error(t, badType.Validate())

	badOrder := valid
	badOrder.Order = "ALPHABETICAL"
	assert.Error(t, badOrder.Validate())

	badRange := valid
	badRange.IDRanges = []IDRange{{Start: 10, End: 1}}
	assert.ErrorIs(t, badRange.Validate(), ErrInvalidRange)
}

func TestIDRange_Contains(t *testing.T) {
	r := IDRange{Start: 3, End: 5}

	assert.False(t, r.Contains(2))
	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(4))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(6))
	assert.Equal(t, "3-5", r.String())
}

func TestQuizType_Answers(t *testing.T) {
	w := Word{ID: 1, English: "concept", Japanese: "概念"}

	assert.Equal(t, "concept", QuizMCQEngToJp.QuestionText(w))
	assert.Equal(t, "概念", QuizMCQEngToJp.CorrectAnswer(w))

	for _, qt := range []QuizType{QuizMCQJpToEng, QuizInputJpToEng, QuizGapFill, QuizGapFillMCQ} {
		assert.Equal(t, "概念", qt.QuestionText(w), string(qt))
		assert.Equal(t, "concept", qt.CorrectAnswer(w), string(qt))
	}
}

func TestQuizType_Kinds(t *testing.T) {
	assert.True(t, QuizMCQEngToJp.IsMultipleChoice())
	assert.True(t, QuizGapFillMCQ.IsMultipleChoice())
	assert.False(t, QuizGapFill.IsMultipleChoice())

	assert.True(t, QuizInputJpToEng.IsInput())
	assert.True(t, QuizGapFill.IsInput())
	assert.False(t, QuizMCQJpToEng.IsInput())

	assert.True(t, QuizGapFillMCQ.UsesFixedDistractors())
	assert.False(t, QuizMCQEngToJp.UsesFixedDistractors())
}

func TestBlankSentence(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		target   string
		expected string
	}{
		{
			name:     "exact match",
			sentence: "The bus fare has increased.",
			target:   "fare",
			expected: "The bus _______ has increased.",
		},
		{
			name:     "only first occurrence",
			sentence: "help me help you",
			target:   "help",
			expected: "_______ me help you",
		},
		{
			name:     "case-insensitive fallback",
			sentence: "Please help yourself to the cake.",
			target:   "Help yourself",
			expected: "Please _______ to the cake.",
		},
		{
			name:     "no match keeps sentence",
			sentence: "We ran out of gas.",
			target:   "run out of",
			expected: "We ran out of gas.",
		},
		{
			name:     "empty sentence",
			sentence: "",
			target:   "fare",
			expected: GapBlank,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BlankSentence(tt.sentence, tt.target))
		})
	}
}

func TestHistoryRecord_Rate(t *testing.T) {
	assert.Equal(t, 0.0, HistoryRecord{}.Rate())
	assert.InDelta(t, 0.75, HistoryRecord{TotalQuestions: 4, CorrectCount: 3}.Rate(), 1e-9)
}
