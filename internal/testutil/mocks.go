package testutil

import (
	"shark/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) ListAuthorized() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) Load() domain.WordSet {
	args := m.Called()
	if args.Get(0) == nil {
		return domain.WordSet{}
	}
	return args.Get(0).(domain.WordSet)
}

func (m *MockWordRepository) Replace(words domain.WordSet) error {
	args := m.Called(words)
	return args.Error(0)
}

// MockArchiveRepository is a mock for ArchiveRepository
type MockArchiveRepository struct {
	mock.Mock
}

func (m *MockArchiveRepository) Append(snapshot domain.WordSet) error {
	args := m.Called(snapshot)
	return args.Error(0)
}

func (m *MockArchiveRepository) List(limit int) []domain.Snapshot {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return []domain.Snapshot{}
	}
	return args.Get(0).([]domain.Snapshot)
}

// MockNotifier is a mock for service.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyWords(words domain.WordSet) error {
	args := m.Called(words)
	return args.Error(0)
}
