package service

import (
	"fmt"
	"testing"

	"emaster/internal/bank"
	"emaster/internal/domain"
	"emaster/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWordService(repo *testutil.MockWordRepository) *WordService {
	return NewWordService(repo, NewUserLocks(), testutil.NewTestLogger())
}

func wordIDs(words []domain.Word) []int {
	ids := make([]int, 0, len(words))
	for _, w := range words {
		ids = append(ids, w.ID)
	}
	return ids
}

func TestWordService_Words(t *testing.T) {
	stored := testutil.NewTestWords(domain.SectionLeap, 3)

	tests := []struct {
		name          string
		listResult    []domain.Word
		listError     error
		expectSeed    bool
		seedError     error
		expectedLen   int
		expectedError bool
	}{
		{
			name:        "existing collection",
			listResult:  stored,
			expectedLen: 3,
		},
		{
			name:        "empty collection is seeded",
			listResult:  []domain.Word{},
			expectSeed:  true,
			expectedLen: len(bank.Words()),
		},
		{
			name:          "seed failure",
			listResult:    []domain.Word{},
			expectSeed:    true,
			seedError:     fmt.Errorf("db error"),
			expectedError: true,
		},
		{
			name:          "list failure",
			listError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			if tt.listError != nil {
				mockRepo.On("ListWords", int64(123)).Return(nil, tt.listError)
			} else {
				mockRepo.On("ListWords", int64(123)).Return(tt.listResult, nil)
			}
			if tt.expectSeed {
				mockRepo.On("ReplaceWords", int64(123), mock.Anything).Return(tt.seedError)
			}

			service := newTestWordService(mockRepo)

			words, err := service.Words(123)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, words)
			} else {
				assert.NoError(t, err)
				assert.Len(t, words, tt.expectedLen)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func listFixture() []domain.Word {
	words := []domain.Word{
		{Section: domain.SectionLeap, ID: 1, English: "theory", Japanese: "理論", Stats: domain.Stats{Attempts: 4, Correct: 1}},
		{Section: domain.SectionLeap, ID: 2, English: "Concept", Japanese: "概念", Stats: domain.Stats{Attempts: 2, Correct: 2}},
		{Section: domain.SectionLeap, ID: 3, English: "analyze", Japanese: "～を分析する"},
		{Section: domain.SectionLeap, ID: 4, English: "factor", Japanese: "要因", Stats: domain.Stats{Attempts: 3, Correct: 2}},
		{Section: domain.SectionTarget, ID: 1, English: "admire", Japanese: "～を賞賛する"},
		{Section: domain.SectionScramble, ID: 11, English: "fare", Japanese: "運賃", ScrambleCategory: domain.CategoryVocab},
		{Section: domain.SectionScramble, ID: 21, English: "put off", Japanese: "～を延期する", ScrambleCategory: domain.CategoryIdiom},
	}
	return words
}

func TestWordService_List(t *testing.T) {
	tests := []struct {
		name     string
		filter   WordFilter
		expected []int
	}{
		{
			name:     "section in id order",
			filter:   WordFilter{Section: domain.SectionLeap},
			expected: []int{1, 2, 3, 4},
		},
		{
			name:     "english ignores case",
			filter:   WordFilter{Section: domain.SectionLeap, SortBy: SortByEnglish},
			expected: []int{3, 2, 4, 1},
		},
		{
			name:     "accuracy ascending, untried first",
			filter:   WordFilter{Section: domain.SectionLeap, SortBy: SortByAccuracy},
			expected: []int{3, 1, 4, 2},
		},
		{
			name:     "mistakes only",
			filter:   WordFilter{Section: domain.SectionLeap, MistakesOnly: true},
			expected: []int{1, 4},
		},
		{
			name:     "search english",
			filter:   WordFilter{Section: domain.SectionLeap, Search: "CON"},
			expected: []int{2},
		},
		{
			name:     "search japanese",
			filter:   WordFilter{Search: "延期"},
			expected: []int{21},
		},
		{
			name:     "ranges",
			filter:   WordFilter{Section: domain.SectionLeap, IDRanges: []domain.IDRange{{Start: 1, End: 1}, {Start: 3, End: 9}}},
			expected: []int{1, 3, 4},
		},
		{
			name:     "scramble category",
			filter:   WordFilter{Section: domain.SectionScramble, ScrambleCategory: domain.CategoryVocab},
			expected: []int{11},
		},
		{
			name:     "no match",
			filter:   WordFilter{Search: "zzz"},
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("ListWords", int64(123)).Return(listFixture(), nil)

			service := newTestWordService(mockRepo)

			words, err := service.List(123, tt.filter)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, wordIDs(words))
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_ResetStats(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("ListWords", int64(123)).Return(listFixture(), nil)

	var saved []domain.Word
	mockRepo.On("ReplaceWords", int64(123), mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).([]domain.Word) }).
		Return(nil)

	service := newTestWordService(mockRepo)

	n, err := service.ResetStats(123, domain.SectionLeap)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.Len(t, saved, len(listFixture()))
	for _, w := range saved {
		assert.Equal(t, domain.Stats{}, w.Stats, "word %s/%d", w.Section, w.ID)
	}
	mockRepo.AssertExpectations(t)
}

func TestWordService_ResetStats_NothingToReset(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("ListWords", int64(123)).Return(listFixture(), nil)

	service := newTestWordService(mockRepo)

	n, err := service.ResetStats(123, domain.SectionTarget)

	assert.NoError(t, err)
	assert.Zero(t, n)
	mockRepo.AssertNotCalled(t, "ReplaceWords", mock.Anything, mock.Anything)
}

func TestWordService_ResetStats_WriteError(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("ListWords", int64(123)).Return(listFixture(), nil)
	mockRepo.On("ReplaceWords", int64(123), mock.Anything).Return(fmt.Errorf("db error"))

	service := newTestWordService(mockRepo)

	n, err := service.ResetStats(123, domain.SectionLeap)

	assert.Error(t, err)
	assert.Zero(t, n)
	mockRepo.AssertExpectations(t)
}
