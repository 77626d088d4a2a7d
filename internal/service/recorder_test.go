package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"emaster/internal/domain"
	"emaster/internal/quiz"
	"emaster/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// answeredSession runs a sequential MCQ session over pool answering the
// given texts, then ends it.
func answeredSession(t *testing.T, pool []domain.Word, answers ...string) quiz.Session {
	t.Helper()

	session, err := quiz.NewSession(domain.QuizConfig{
		Section: domain.SectionLeap,
		Type:    domain.QuizMCQJpToEng,
		Order:   domain.OrderSequential,
	}, pool, quiz.NewRand(1), nil)
	require.NoError(t, err)

	for _, a := range answers {
		session, _, err = session.Submit(a)
		require.NoError(t, err)
		session, err = session.Advance()
		require.NoError(t, err)
	}
	return session.End()
}

func newTestRecorder(words *testutil.MockWordRepository, history *testutil.MockHistoryRepository, logger *zap.Logger) *HistoryRecorder {
	r := NewHistoryRecorder(NewWordService(words, NewUserLocks(), logger), history, logger)
	r.newID = func() string { return "rec-7" }
	r.now = func() time.Time { return recordedAt }
	return r
}

func TestHistoryRecorder_Record(t *testing.T) {
	pool := testutil.NewTestWords(domain.SectionLeap, 3)
	pool[1].Stats = domain.Stats{Attempts: 2, Correct: 2}

	words := new(testutil.MockWordRepository)
	history := new(testutil.MockHistoryRepository)
	words.On("ListWords", int64(5)).Return(pool, nil)

	var saved []domain.Word
	words.On("ReplaceWords", int64(5), mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).([]domain.Word) }).
		Return(nil)
	history.On("InsertHistory", int64(5), mock.MatchedBy(func(r domain.HistoryRecord) bool {
		return r.ID == "rec-7" && r.TotalQuestions == 2 && r.CorrectCount == 1
	})).Return(nil)

	r := newTestRecorder(words, history, testutil.NewTestLogger())
	session := answeredSession(t, pool, pool[0].English, "nope")

	record, err := r.Record(5, session)

	require.NoError(t, err)
	assert.Equal(t, 2, record.TotalQuestions)
	assert.Equal(t, 1, record.CorrectCount)
	assert.Equal(t, recordedAt, record.Date)

	require.Len(t, saved, 3)
	assert.Equal(t, domain.Stats{Attempts: 1, Correct: 1}, saved[0].Stats)
	assert.Equal(t, domain.Stats{Attempts: 3, Correct: 2}, saved[1].Stats)
	assert.Equal(t, domain.Stats{}, saved[2].Stats)
	assert.Equal(t, domain.Stats{Attempts: 2, Correct: 2}, pool[1].Stats, "input slice must not change")

	words.AssertExpectations(t)
	history.AssertExpectations(t)
}

func TestHistoryRecorder_NoAnswersSkipsStats(t *testing.T) {
	words := new(testutil.MockWordRepository)
	history := new(testutil.MockHistoryRepository)
	history.On("InsertHistory", int64(5), mock.MatchedBy(func(r domain.HistoryRecord) bool {
		return r.TotalQuestions == 0 && r.CorrectCount == 0 && len(r.Details) == 0
	})).Return(nil)

	r := newTestRecorder(words, history, testutil.NewTestLogger())
	session := answeredSession(t, testutil.NewTestWords(domain.SectionLeap, 4))

	record, err := r.Record(5, session)

	assert.NoError(t, err)
	assert.Zero(t, record.Rate())
	words.AssertNotCalled(t, "ListWords", mock.Anything)
	words.AssertNotCalled(t, "ReplaceWords", mock.Anything, mock.Anything)
	history.AssertExpectations(t)
}

func TestHistoryRecorder_PersistenceFailures(t *testing.T) {
	tests := []struct {
		name         string
		replaceError error
		insertError  error
		expectedMsgs []string
	}{
		{
			name:         "stats write fails",
			replaceError: fmt.Errorf("disk full"),
			expectedMsgs: []string{"save stats", "disk full"},
		},
		{
			name:         "history write fails",
			insertError:  fmt.Errorf("timeout"),
			expectedMsgs: []string{"insert history", "timeout"},
		},
		{
			name:         "both fail",
			replaceError: fmt.Errorf("disk full"),
			insertError:  fmt.Errorf("timeout"),
			expectedMsgs: []string{"disk full", "timeout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := testutil.NewTestWords(domain.SectionLeap, 2)
			words := new(testutil.MockWordRepository)
			history := new(testutil.MockHistoryRepository)
			words.On("ListWords", int64(5)).Return(pool, nil)
			words.On("ReplaceWords", int64(5), mock.Anything).Return(tt.replaceError)
			history.On("InsertHistory", int64(5), mock.Anything).Return(tt.insertError)

			logger, logs := testutil.NewObservedLogger()
			r := newTestRecorder(words, history, logger)
			session := answeredSession(t, pool, pool[0].English, pool[1].English)

			record, err := r.Record(5, session)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrPersistence))
			for _, msg := range tt.expectedMsgs {
				assert.Contains(t, err.Error(), msg)
			}

			// the in-memory summary survives
			assert.Equal(t, 2, record.TotalQuestions)
			assert.Equal(t, 2, record.CorrectCount)

			warnings := logs.FilterMessage("Quiz results not saved").All()
			require.Len(t, warnings, 1)
			assert.Equal(t, zap.WarnLevel, warnings[0].Level)
			assert.Equal(t, "rec-7", warnings[0].ContextMap()["record_id"])

			history.AssertExpectations(t)
		})
	}
}

func TestHistoryRecorder_ReadFailureStillStoresHistory(t *testing.T) {
	words := new(testutil.MockWordRepository)
	history := new(testutil.MockHistoryRepository)
	words.On("ListWords", int64(5)).Return(nil, fmt.Errorf("connection refused"))
	history.On("InsertHistory", int64(5), mock.Anything).Return(nil)

	r := newTestRecorder(words, history, testutil.NewTestLogger())
	pool := testutil.NewTestWords(domain.SectionLeap, 2)
	session := answeredSession(t, pool, pool[0].English)

	record, err := r.Record(5, session)

	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Equal(t, 1, record.CorrectCount)
	words.AssertNotCalled(t, "ReplaceWords", mock.Anything, mock.Anything)
	history.AssertExpectations(t)
}

func TestNewRecordID(t *testing.T) {
	a, b := newRecordID(), newRecordID()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
