package jsonfile

import (
	"errors"
	"fmt"
	"os"

	"shark/internal/domain"

	"go.uber.org/zap"
)

// WordRepo implements repository.WordRepository on a single JSON file
type WordRepo struct {
	path   string
	logger *zap.Logger
}

// NewWordRepo creates a word repository backed by path
func NewWordRepo(path string, logger *zap.Logger) *WordRepo {
	return &WordRepo{path: path, logger: logger}
}

// Path returns the backing file path
func (r *WordRepo) Path() string {
	return r.path
}

// Load reads the current word set.
// Any read or parse failure yields an empty set; bad entries are skipped.
func (r *WordRepo) Load() domain.WordSet {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.logger.Warn("Failed to read word file, using empty set",
				zap.String("path", r.path),
				zap.Error(err),
			)
		}
		return domain.WordSet{}
	}

	decoded, err := DecodeDocument(data)
	if err != nil {
		r.logger.Warn("Malformed word file, using empty set",
			zap.String("path", r.path),
			zap.Error(err),
		)
		return domain.WordSet{}
	}

	if decoded.Skipped > 0 {
		r.logger.Debug("Skipped malformed word entries",
			zap.String("path", r.path),
			zap.Int("skipped", decoded.Skipped),
		)
	}

	return decoded.Words
}

// Replace overwrites the word file with words
func (r *WordRepo) Replace(words domain.WordSet) error {
	data, err := encodeDocument(words)
	if err != nil {
		return fmt.Errorf("failed to encode words: %w", err)
	}
	if err := writeFileAtomic(r.path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.path, err)
	}
	return nil
}
