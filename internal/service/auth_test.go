package service

import (
	"fmt"
	"testing"

	"shark/internal/testutil"

	"github.com/stretchr/testify/assert"
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
			name:           "case sensitive",
			botPassword:    "Secret123",
			inputPassword:  "secret123",
			expectedResult: false,
		},
		{
			name:           "unset bot password never matches",
			botPassword:    "",
			inputPassword:  "",
			expectedResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewAuthService(new(testutil.MockUserRepository), tt.botPassword)
			assert.Equal(t, tt.expectedResult, service.CheckPassword(tt.inputPassword))
		})
	}
}

func TestAuthService_Authorize(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		mockError     error
		expectCall    bool
		expectedAuth  bool
		expectedError bool
	}{
		{
			name:         "correct password",
			password:     "secret",
			expectCall:   true,
			expectedAuth: true,
		},
		{
			name:         "wrong password",
			password:     "nope",
			expectCall:   false,
			expectedAuth: false,
		},
		{
			name:          "repository error",
			password:      "secret",
			mockError:     fmt.Errorf("db error"),
			expectCall:    true,
			expectedAuth:  false,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			if tt.expectCall {
				mockRepo.On("AuthorizeUser", int64(123)).Return(tt.mockError)
			}

			service := NewAuthService(mockRepo, "secret")
			authorized, err := service.Authorize(123, tt.password)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedAuth, authorized)

			mockRepo.AssertExpectations(t)
			if !tt.expectCall {
				mockRepo.AssertNotCalled(t, "AuthorizeUser", int64(123))
			}
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
			name:         "authorized user",
			userID:       123,
			mockReturn:   true,
			expectedAuth: true,
		},
		{
			name:         "unauthorized user",
			userID:       456,
			mockReturn:   false,
			expectedAuth: false,
		},
		{
			name:          "database error",
			userID:        789,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("IsAuthorized", tt.userID).Return(tt.mockReturn, tt.mockError)

			service := NewAuthService(mockRepo, "password")
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

func TestAuthService_EnsureUserExists(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("EnsureUserExists", int64(123)).Return(nil)

	service := NewAuthService(mockRepo, "password")

	assert.NoError(t, service.EnsureUserExists(123))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_AuthorizedUsers(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("ListAuthorized").Return([]int64{1, 2}, nil)

	service := NewAuthService(mockRepo, "password")
	ids, err := service.AuthorizedUsers()

	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
	mockRepo.AssertExpectations(t)
}
