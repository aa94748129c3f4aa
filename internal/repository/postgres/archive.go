package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"shark/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ArchiveRepo implements repository.ArchiveRepository
type ArchiveRepo struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewArchiveRepo creates a new archive repository
func NewArchiveRepo(db *sql.DB, logger *zap.Logger) *ArchiveRepo {
	return &ArchiveRepo{db: db, logger: logger, now: time.Now}
}

// Append stores one snapshot row
func (r *ArchiveRepo) Append(snapshot domain.WordSet) error {
	if snapshot == nil {
		snapshot = domain.WordSet{}
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	query := `
		INSERT INTO archive_snapshots (id, archived_at, words)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.Exec(query, uuid.New().String(), r.now().UTC(), payload); err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// List returns snapshots newest first.
// Rows with unreadable payloads are skipped.
func (r *ArchiveRepo) List(limit int) []domain.Snapshot {
	query := `
		SELECT id, archived_at, words
		FROM archive_snapshots
		ORDER BY archived_at DESC
	`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.Query(query+" LIMIT $1", limit)
	} else {
		rows, err = r.db.Query(query)
	}
	if err != nil {
		r.logger.Warn("Failed to list archive", zap.Error(err))
		return []domain.Snapshot{}
	}
	defer rows.Close()

	snaps := []domain.Snapshot{}
	for rows.Next() {
		var s domain.Snapshot
		var payload []byte
		if err := rows.Scan(&s.ID, &s.ArchivedAt, &payload); err != nil {
			r.logger.Warn("Skipping unreadable snapshot row", zap.Error(err))
			continue
		}
		if err := json.Unmarshal(payload, &s.Words); err != nil {
			r.logger.Warn("Skipping malformed snapshot", zap.String("id", s.ID), zap.Error(err))
			continue
		}
		if s.Words == nil {
			s.Words = domain.WordSet{}
		}
		snaps = append(snaps, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Warn("Archive listing interrupted", zap.Error(err))
	}
	return snaps
}
