package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Accuracy(t *testing.T) {
	tests := []struct {
		name     string
		stats    Stats
		expected float64
	}{
		{name: "never attempted", stats: Stats{}, expected: 0},
		{name: "all correct", stats: Stats{Attempts: 4, Correct: 4}, expected: 1},
		{name: "half correct", stats: Stats{Attempts: 4, Correct: 2}, expected: 0.5},
		{name: "all wrong", stats: Stats{Attempts: 3, Correct: 0}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.stats.Accuracy(), 1e-9)
		})
	}
}

func TestStats_NeedsReview(t *testing.T) {
	tests := []struct {
		name     string
		stats    Stats
		expected bool
	}{
		{name: "never attempted is not reviewable", stats: Stats{}, expected: false},
		{name: "perfect", stats: Stats{Attempts: 2, Correct: 2}, expected: false},
		{name: "one miss", stats: Stats{Attempts: 2, Correct: 1}, expected: true},
		{name: "all misses", stats: Stats{Attempts: 2, Correct: 0}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stats.NeedsReview())
		})
	}
}

func TestWord_Key(t *testing.T) {
	leap := Word{ID: 1, Section: SectionLeap}
	target := Word{ID: 1, Section: SectionTarget}

	assert.Equal(t, WordKey{Section: SectionLeap, ID: 1}, leap.Key())
	assert.NotEqual(t, leap.Key(), target.Key())
}

func TestScrambleCategory_Code(t *testing.T) {
	for _, cat := range ScrambleCategories {
		code := cat.Code()
		assert.NotEmpty(t, code)

		back, ok := CategoryFromCode(code)
		assert.True(t, ok)
		assert.Equal(t, cat, back)
	}

	_, ok := CategoryFromCode("UNKNOWN")
	assert.False(t, ok)
}

func TestSection_Valid(t *testing.T) {
	assert.True(t, SectionLeap.Valid())
	assert.True(t, SectionScramble.Valid())
	assert.False(t, Section("HOME").Valid())
	assert.False(t, Section("").Valid())
}
