package repository

import (
	"shark/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
	ListAuthorized() ([]int64, error)
}

// WordRepository owns the current word set.
//
// Load never fails: a missing or unreadable store yields an empty set and
// malformed entries are skipped. Replace overwrites the whole set.
type WordRepository interface {
	Load() domain.WordSet
	Replace(words domain.WordSet) error
}

// ArchiveRepository is the append-only history of replaced word sets.
// List returns newest snapshots first; limit <= 0 returns all of them.
type ArchiveRepository interface {
	Append(snapshot domain.WordSet) error
	List(limit int) []domain.Snapshot
}
