package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"emaster/internal/domain"
	"emaster/internal/quiz"

	"go.uber.org/zap"
)

// QuizService starts and finishes quiz sessions
type QuizService struct {
	words       *WordService
	recorder    *HistoryRecorder
	speaker     quiz.Speaker
	randomCount int
	logger      *zap.Logger

	seedMu sync.Mutex
	seeds  *rand.Rand
}

// NewQuizService creates a new quiz service. A zero seed seeds sessions from
// the clock; any other value makes question order and options reproducible.
func NewQuizService(
	words *WordService,
	recorder *HistoryRecorder,
	speaker quiz.Speaker,
	randomCount int,
	seed int64,
	logger *zap.Logger,
) *QuizService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &QuizService{
		words:       words,
		recorder:    recorder,
		speaker:     speaker,
		randomCount: randomCount,
		logger:      logger,
		seeds:       quiz.NewRand(seed),
	}
}

// nextRand gives every session its own source; *rand.Rand is not safe for
// concurrent use and sessions of different users run in parallel.
func (s *QuizService) nextRand() quiz.Rand {
	s.seedMu.Lock()
	seed := s.seeds.Int63()
	s.seedMu.Unlock()
	return quiz.NewRand(seed)
}

// Start builds a session over the user's words. Returns
// domain.ErrEmptyQuestionSet when nothing matches; no stats are touched.
func (s *QuizService) Start(userID int64, cfg domain.QuizConfig) (quiz.Session, error) {
	if err := cfg.Validate(); err != nil {
		return quiz.Session{}, err
	}

	words, err := s.words.Words(userID)
	if err != nil {
		return quiz.Session{}, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	session, err := quiz.NewSession(cfg, words, s.nextRand(), s.speaker)
	if err != nil {
		return quiz.Session{}, err
	}

	s.logger.Info("Quiz started",
		zap.Int64("user_id", userID),
		zap.String("section", string(cfg.Section)),
		zap.String("quiz_type", string(cfg.Type)),
		zap.Int("questions", session.Total()),
	)
	return session, nil
}

// Available counts the words a config would select without a limit
func (s *QuizService) Available(userID int64, cfg domain.QuizConfig) (int, error) {
	words, err := s.words.Words(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	cfg.Limit = 0
	cfg.Order = domain.OrderSequential
	return len(quiz.BuildQuestionSet(words, cfg, s.nextRand())), nil
}

// RandomLimit caps the quick random quiz at the configured size
func (s *QuizService) RandomLimit(available int) int {
	if available < s.randomCount {
		return available
	}
	return s.randomCount
}

// Finish ends the session if needed and records it. The record is returned
// even when persisting fails; the error then wraps domain.ErrPersistence.
func (s *QuizService) Finish(userID int64, session quiz.Session) (domain.HistoryRecord, error) {
	if !session.Finished() {
		session = session.End()
	}
	return s.recorder.Record(userID, session)
}
