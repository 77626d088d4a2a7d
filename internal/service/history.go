package service

import (
	"fmt"
	"time"

	"emaster/internal/domain"
	"emaster/internal/export"
	"emaster/internal/repository"

	"go.uber.org/zap"
)

// HistoryPageSize is the number of records per history page
const HistoryPageSize = 7

// HistoryService serves stored quiz history
type HistoryService struct {
	historyRepo repository.HistoryRepository
	location    *time.Location
	logger      *zap.Logger
}

// NewHistoryService creates a new history service. Dates in exports are
// rendered in loc.
func NewHistoryService(historyRepo repository.HistoryRepository, loc *time.Location, logger *zap.Logger) *HistoryService {
	if loc == nil {
		loc = time.UTC
	}
	return &HistoryService{
		historyRepo: historyRepo,
		location:    loc,
		logger:      logger,
	}
}

// Page returns one page of records, newest first, and the total page count
func (s *HistoryService) Page(userID int64, page int) ([]domain.HistoryRecord, int, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * HistoryPageSize
	records, err := s.historyRepo.ListHistory(userID, HistoryPageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.historyRepo.CountHistory(userID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (total + HistoryPageSize - 1) / HistoryPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return records, totalPages, nil
}

// Get returns one record or domain.ErrHistoryNotFound
func (s *HistoryService) Get(userID int64, id string) (*domain.HistoryRecord, error) {
	return s.historyRepo.GetHistory(userID, id)
}

// SummaryCSV exports every record of the user, newest first
func (s *HistoryService) SummaryCSV(userID int64) ([]byte, error) {
	total, err := s.historyRepo.CountHistory(userID)
	if err != nil {
		return nil, err
	}

	var records []domain.HistoryRecord
	if total > 0 {
		records, err = s.historyRepo.ListHistory(userID, total, 0)
		if err != nil {
			return nil, err
		}
	}

	return export.SummaryCSV(records, s.location)
}

// DetailCSV exports the answers of one record
func (s *HistoryService) DetailCSV(userID int64, id string) ([]byte, error) {
	record, err := s.historyRepo.GetHistory(userID, id)
	if err != nil {
		return nil, err
	}
	return export.DetailCSV(*record)
}

// Clear deletes the user's whole history
func (s *HistoryService) Clear(userID int64) error {
	if err := s.historyRepo.ClearHistory(userID); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	s.logger.Info("History cleared", zap.Int64("user_id", userID))
	return nil
}
