package service

import (
	"emaster/internal/domain"

	"go.uber.org/zap"
)

// StatsService aggregates learning statistics
type StatsService struct {
	words  *WordService
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(words *WordService, logger *zap.Logger) *StatsService {
	return &StatsService{
		words:  words,
		logger: logger,
	}
}

// Summaries returns one summary per section in menu order
func (s *StatsService) Summaries(userID int64) ([]domain.SectionSummary, error) {
	words, err := s.words.Words(userID)
	if err != nil {
		s.logger.Error("Failed to load words for stats", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	bySection := make(map[domain.Section]*domain.SectionSummary, len(domain.Sections))
	summaries := make([]domain.SectionSummary, len(domain.Sections))
	for i, section := range domain.Sections {
		summaries[i].Section = section
		bySection[section] = &summaries[i]
	}

	for _, w := range words {
		sum, ok := bySection[w.Section]
		if !ok {
			continue
		}
		sum.Words++
		sum.Attempts += w.Stats.Attempts
		sum.Correct += w.Stats.Correct
		if w.Stats.Attempts > 0 {
			sum.Attempted++
		}
		if w.Stats.NeedsReview() {
			sum.Review++
		}
	}

	return summaries, nil
}
