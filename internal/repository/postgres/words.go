package postgres

import (
	"database/sql"
	"fmt"

	"shark/internal/domain"

	"go.uber.org/zap"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB, logger *zap.Logger) *WordRepo {
	return &WordRepo{db: db, logger: logger}
}

// Load returns the current word set in stored order.
// Query errors are logged and produce an empty set.
func (r *WordRepo) Load() domain.WordSet {
	query := `
		SELECT word, translation
		FROM words
		ORDER BY position
	`
	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Warn("Failed to load words, using empty set", zap.Error(err))
		return domain.WordSet{}
	}
	defer rows.Close()

	words := domain.WordSet{}
	for rows.Next() {
		var e domain.WordEntry
		var translation sql.NullString
		if err := rows.Scan(&e.Word, &translation); err != nil {
			r.logger.Warn("Skipping unreadable word row", zap.Error(err))
			continue
		}
		if e.Word == "" {
			continue
		}
		e.Translation = translation.String
		words = append(words, e)
	}

	if err := rows.Err(); err != nil {
		r.logger.Warn("Failed to load words, using empty set", zap.Error(err))
		return domain.WordSet{}
	}
	return words
}

// Replace swaps the stored set for words in one transaction
func (r *WordRepo) Replace(words domain.WordSet) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM words`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear words: %w", err)
	}

	query := `
		INSERT INTO words (position, word, translation)
		VALUES ($1, $2, $3)
	`
	for i, w := range words {
		if _, err := tx.Exec(query, i, w.Word, w.Translation); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert word %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit words: %w", err)
	}
	return nil
}
