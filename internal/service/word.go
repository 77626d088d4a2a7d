package service

import (
	"fmt"
	"sort"
	"strings"

	"emaster/internal/bank"
	"emaster/internal/domain"
	"emaster/internal/repository"

	"go.uber.org/zap"
)

// WordSortKey orders the word list view
type WordSortKey string

const (
	SortByID       WordSortKey = "id"
	SortByEnglish  WordSortKey = "english"
	SortByJapanese WordSortKey = "japanese"
	SortByAccuracy WordSortKey = "accuracy"
)

// WordFilter selects and orders words for browsing
type WordFilter struct {
	Section          domain.Section
	ScrambleCategory domain.ScrambleCategory
	IDRanges         []domain.IDRange
	Search           string
	SortBy           WordSortKey
	MistakesOnly     bool
}

// WordService handles word-related business logic
type WordService struct {
	wordRepo repository.WordRepository
	locks    *UserLocks
	logger   *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, locks *UserLocks, logger *zap.Logger) *WordService {
	return &WordService{
		wordRepo: wordRepo,
		locks:    locks,
		logger:   logger,
	}
}

// Words returns the user's collection, seeding it from the built-in bank on first read
func (s *WordService) Words(userID int64) ([]domain.Word, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	return s.load(userID)
}

// Seed replaces the user's collection with a fresh copy of the built-in bank
func (s *WordService) Seed(userID int64) error {
	unlock := s.locks.Lock(userID)
	defer unlock()

	_, err := s.seed(userID)
	return err
}

// load must be called with the user's lock held
func (s *WordService) load(userID int64) ([]domain.Word, error) {
	words, err := s.wordRepo.ListWords(userID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	if len(words) > 0 {
		return words, nil
	}
	return s.seed(userID)
}

func (s *WordService) seed(userID int64) ([]domain.Word, error) {
	words := bank.Words()
	if err := s.wordRepo.ReplaceWords(userID, words); err != nil {
		return nil, fmt.Errorf("seed words: %w", err)
	}

	s.logger.Info("Seeded word bank",
		zap.Int64("user_id", userID),
		zap.Int("words", len(words)),
	)
	return words, nil
}

// List returns the words matching the filter in the requested order
func (s *WordService) List(userID int64, f WordFilter) ([]domain.Word, error) {
	words, err := s.Words(userID)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))

	var out []domain.Word
	for _, w := range words {
		if f.Section != "" && w.Section != f.Section {
			continue
		}
		if f.ScrambleCategory != "" && w.ScrambleCategory != f.ScrambleCategory {
			continue
		}
		if len(f.IDRanges) > 0 && !inRanges(w.ID, f.IDRanges) {
			continue
		}
		if f.MistakesOnly && !w.Stats.NeedsReview() {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(w.English), search) &&
			!strings.Contains(w.Japanese, search) {
			continue
		}
		out = append(out, w)
	}

	sortWords(out, f.SortBy)
	return out, nil
}

// ResetStats zeroes attempts and correct answers of one section.
// Returns the number of words that had stats.
func (s *WordService) ResetStats(userID int64, section domain.Section) (int, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	words, err := s.load(userID)
	if err != nil {
		return 0, err
	}

	reset := 0
	updated := make([]domain.Word, len(words))
	for i, w := range words {
		updated[i] = w
		if w.Section != section || w.Stats.Attempts == 0 {
			continue
		}
		updated[i].Stats = domain.Stats{}
		reset++
	}

	if reset == 0 {
		return 0, nil
	}
	if err := s.wordRepo.ReplaceWords(userID, updated); err != nil {
		return 0, fmt.Errorf("reset stats: %w", err)
	}

	s.logger.Info("Stats reset",
		zap.Int64("user_id", userID),
		zap.String("section", string(section)),
		zap.Int("words", reset),
	)
	return reset, nil
}

func inRanges(id int, ranges []domain.IDRange) bool {
	for _, r := range ranges {
		if r.Contains(id) {
			return true
		}
	}
	return false
}

func sortWords(words []domain.Word, key WordSortKey) {
	var less func(a, b domain.Word) bool
	switch key {
	case SortByEnglish:
		less = func(a, b domain.Word) bool { return strings.ToLower(a.English) < strings.ToLower(b.English) }
	case SortByJapanese:
		less = func(a, b domain.Word) bool { return a.Japanese < b.Japanese }
	case SortByAccuracy:
		less = func(a, b domain.Word) bool { return a.Stats.Accuracy() < b.Stats.Accuracy() }
	default:
		less = func(a, b domain.Word) bool { return a.ID < b.ID }
	}

	sort.SliceStable(words, func(i, j int) bool {
		if less(words[i], words[j]) {
			return true
		}
		if less(words[j], words[i]) {
			return false
		}
		if words[i].Section != words[j].Section {
			return words[i].Section < words[j].Section
		}
		return words[i].ID < words[j].ID
	})
}
