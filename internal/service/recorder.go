package service

import (
	"errors"
	"fmt"
	"time"

	"emaster/internal/domain"
	"emaster/internal/quiz"
	"emaster/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HistoryRecorder folds finished sessions into word stats and history
type HistoryRecorder struct {
	words   *WordService
	history repository.HistoryRepository
	logger  *zap.Logger

	newID func() string
	now   func() time.Time
}

// NewHistoryRecorder creates a new recorder
func NewHistoryRecorder(words *WordService, history repository.HistoryRepository, logger *zap.Logger) *HistoryRecorder {
	return &HistoryRecorder{
		words:   words,
		history: history,
		logger:  logger,
		newID:   newRecordID,
		now:     time.Now,
	}
}

// newRecordID returns a time-ordered id
func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Record persists the stats update and the history record of a session.
// The record is always returned; store failures come back wrapped in
// domain.ErrPersistence and are logged, never fatal.
func (r *HistoryRecorder) Record(userID int64, session quiz.Session) (domain.HistoryRecord, error) {
	record := session.Record(r.newID(), r.now())
	outcomes := quiz.Outcomes(session.Results())

	var errs []error

	// the word collection is read-modify-write; no other writer may interleave
	unlock := r.words.locks.Lock(userID)
	if len(outcomes) > 0 {
		if err := r.applyStats(userID, record.Section, outcomes); err != nil {
			errs = append(errs, err)
		}
	}
	unlock()

	if err := r.history.InsertHistory(userID, record); err != nil {
		errs = append(errs, fmt.Errorf("insert history: %w", err))
	}

	if len(errs) > 0 {
		err := fmt.Errorf("%w: %w", domain.ErrPersistence, errors.Join(errs...))
		r.logger.Warn("Quiz results not saved",
			zap.Int64("user_id", userID),
			zap.String("record_id", record.ID),
			zap.Error(err),
		)
		return record, err
	}

	r.logger.Info("Quiz recorded",
		zap.Int64("user_id", userID),
		zap.String("record_id", record.ID),
		zap.String("section", string(record.Section)),
		zap.Int("questions", record.TotalQuestions),
		zap.Int("correct", record.CorrectCount),
	)
	return record, nil
}

func (r *HistoryRecorder) applyStats(userID int64, section domain.Section, outcomes []domain.Outcome) error {
	words, err := r.words.load(userID)
	if err != nil {
		return err
	}

	updated := quiz.ApplyOutcomes(words, section, outcomes)
	if err := r.words.wordRepo.ReplaceWords(userID, updated); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}
