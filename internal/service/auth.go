package service

import (
	"crypto/subtle"

	"emaster/internal/repository"

	"go.uber.org/zap"
)

// AuthService handles authentication logic
type AuthService struct {
	userRepo    repository.UserRepository
	words       *WordService
	botPassword string
	logger      *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, words *WordService, botPassword string, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		words:       words,
		botPassword: botPassword,
		logger:      logger,
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.botPassword)) == 1
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	return s.userRepo.IsAuthorized(userID)
}

// AuthorizeUser authorizes a user
func (s *AuthService) AuthorizeUser(userID int64) error {
	return s.userRepo.AuthorizeUser(userID)
}

// EnsureUserExists creates the user record if missing and gives new users
// their own copy of the word bank
func (s *AuthService) EnsureUserExists(userID int64) error {
	created, err := s.userRepo.EnsureUserExists(userID)
	if err != nil {
		return err
	}
	if !created {
		return nil
	}

	s.logger.Info("New user registered", zap.Int64("user_id", userID))
	if err := s.words.Seed(userID); err != nil {
		// Words seeds lazily on the next read
		s.logger.Warn("Failed to seed word bank", zap.Int64("user_id", userID), zap.Error(err))
	}
	return nil
}
