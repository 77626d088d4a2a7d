package service

import (
	"fmt"
	"testing"

	"emaster/internal/bank"
	"emaster/internal/domain"
	"emaster/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthService_CheckPassword(t *testing.T) {
	tests := []struct {
		name           string
		botPassword    string
		inputPassword  string
		expectedResult bool
	}{
		{
			name:           "correct password",
			botPassword:    "secret123",
			inputPassword:  "secret123",
			expectedResult: true,
		},
		{
			name:           "incorrect password",
			botPassword:    "secret123",
			inputPassword:  "wrong",
			expectedResult: false,
		},
		{
			name:           "empty password",
			botPassword:    "secret123",
			inputPassword:  "",
			expectedResult: false,
		},
		{
			name:           "prefix of password",
			botPassword:    "secret123",
			inputPassword:  "secret",
			expectedResult: false,
		},
		{
			name:           "case sensitive",
			botPassword:    "Secret123",
			inputPassword:  "secret123",
			expectedResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			service := newTestAuthService(mockRepo, nil, tt.botPassword)

			result := service.CheckPassword(tt.inputPassword)

			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestAuthService_IsAuthorized(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockReturn    bool
		mockError     error
		expectedAuth  bool
		expectedError bool
	}{
		{
			name:          "authorized user",
			userID:        123,
			mockReturn:    true,
			mockError:     nil,
			expectedAuth:  true,
			expectedError: false,
		},
		{
			name:          "unauthorized user",
			userID:        456,
			mockReturn:    false,
			mockError:     nil,
			expectedAuth:  false,
			expectedError: false,
		},
		{
			name:          "repository error",
			userID:        789,
			mockReturn:    false,
			mockError:     fmt.Errorf("db error"),
			expectedAuth:  false,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("IsAuthorized", tt.userID).Return(tt.mockReturn, tt.mockError)

			service := newTestAuthService(mockRepo, nil, "password")

			authorized, err := service.IsAuthorized(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAuth, authorized)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_AuthorizeUser(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("AuthorizeUser", int64(123)).Return(nil)

	service := newTestAuthService(mockRepo, nil, "password")

	err := service.AuthorizeUser(123)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func newTestAuthService(userRepo *testutil.MockUserRepository, wordRepo *testutil.MockWordRepository, password string) *AuthService {
	if wordRepo == nil {
		wordRepo = new(testutil.MockWordRepository)
	}
	logger := testutil.NewTestLogger()
	words := NewWordService(wordRepo, NewUserLocks(), logger)
	return NewAuthService(userRepo, words, password, logger)
}

func TestAuthService_EnsureUserExists_Existing(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockWords := new(testutil.MockWordRepository)
	mockRepo.On("EnsureUserExists", int64(123)).Return(false, nil)

	service := newTestAuthService(mockRepo, mockWords, "password")

	err := service.EnsureUserExists(123)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockWords.AssertNotCalled(t, "ReplaceWords", mock.Anything, mock.Anything)
}

func TestAuthService_EnsureUserExists_NewUserGetsBank(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockWords := new(testutil.MockWordRepository)
	mockRepo.On("EnsureUserExists", int64(123)).Return(true, nil)
	mockWords.On("ReplaceWords", int64(123), mock.MatchedBy(func(words []domain.Word) bool {
		return len(words) == len(bank.Words())
	})).Return(nil)

	service := newTestAuthService(mockRepo, mockWords, "password")

	err := service.EnsureUserExists(123)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockWords.AssertExpectations(t)
}

func TestAuthService_EnsureUserExists_SeedFailureIsNotFatal(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockWords := new(testutil.MockWordRepository)
	mockRepo.On("EnsureUserExists", int64(123)).Return(true, nil)
	mockWords.On("ReplaceWords", int64(123), mock.Anything).Return(fmt.Errorf("db error"))

	service := newTestAuthService(mockRepo, mockWords, "password")

	err := service.EnsureUserExists(123)

	assert.NoError(t, err)
	mockWords.AssertExpectations(t)
}

func TestAuthService_EnsureUserExists_Error(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("EnsureUserExists", int64(123)).Return(false, fmt.Errorf("db error"))

	service := newTestAuthService(mockRepo, nil, "password")

	err := service.EnsureUserExists(123)

	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
