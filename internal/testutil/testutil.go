package testutil

import (
	"time"

	"shark/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWords builds a word set from word/translation pairs
func NewTestWords(pairs ...string) domain.WordSet {
	set := domain.WordSet{}
	for i := 0; i+1 < len(pairs); i += 2 {
		set = append(set, domain.WordEntry{Word: pairs[i], Translation: pairs[i+1]})
	}
	return set
}

// NewTestSnapshot creates a test snapshot
func NewTestSnapshot(id string, archivedAt time.Time, words domain.WordSet) domain.Snapshot {
	return domain.Snapshot{
		ID:         id,
		ArchivedAt: archivedAt,
		Words:      words,
	}
}
