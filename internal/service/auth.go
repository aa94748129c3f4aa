package service

import (
	"crypto/subtle"

	"shark/internal/repository"
)

// AuthService handles bot authorization
type AuthService struct {
	userRepo    repository.UserRepository
	botPassword string
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, botPassword string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		botPassword: botPassword,
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	if s.botPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.botPassword)) == 1
}

// Authorize authorizes userID when password matches.
// It reports whether the user was authorized.
func (s *AuthService) Authorize(userID int64, password string) (bool, error) {
	if !s.CheckPassword(password) {
		return false, nil
	}
	if err := s.userRepo.AuthorizeUser(userID); err != nil {
		return false, err
	}
	return true, nil
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	return s.userRepo.IsAuthorized(userID)
}

// EnsureUserExists creates user record if doesn't exist
func (s *AuthService) EnsureUserExists(userID int64) error {
	return s.userRepo.EnsureUserExists(userID)
}

// AuthorizedUsers lists users that receive periodic word lists
func (s *AuthService) AuthorizedUsers() ([]int64, error) {
	return s.userRepo.ListAuthorized()
}
