package repository

import (
	"emaster/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) (bool, error)
}

// WordRepository defines word data operations
type WordRepository interface {
	ListWords(userID int64) ([]domain.Word, error)
	ReplaceWords(userID int64, words []domain.Word) error
}

// HistoryRepository defines quiz history operations
type HistoryRepository interface {
	InsertHistory(userID int64, record domain.HistoryRecord) error
	ListHistory(userID int64, limit, offset int) ([]domain.HistoryRecord, error)
	CountHistory(userID int64) (int, error)
	GetHistory(userID int64, id string) (*domain.HistoryRecord, error)
	ClearHistory(userID int64) error
}
