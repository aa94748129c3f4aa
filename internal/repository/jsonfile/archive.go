package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"shark/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ArchiveRepo implements repository.ArchiveRepository as newline-delimited JSON
type ArchiveRepo struct {
	path   string
	logger *zap.Logger
	now    func() time.Time
}

type archiveRecord struct {
	ID         string         `json:"id"`
	ArchivedAt time.Time      `json:"archived_at"`
	Words      domain.WordSet `json:"words"`
}

// storedRecord is the read side of archiveRecord. Fields stay loose so that
// records written by older versions (words only, bare strings) still load.
type storedRecord struct {
	ID         string            `json:"id"`
	ArchivedAt string            `json:"archived_at"`
	Words      []json.RawMessage `json:"words"`
}

// NewArchiveRepo creates an archive backed by path
func NewArchiveRepo(path string, logger *zap.Logger) *ArchiveRepo {
	return &ArchiveRepo{path: path, logger: logger, now: time.Now}
}

// Path returns the backing file path
func (r *ArchiveRepo) Path() string {
	return r.path
}

// Append adds one snapshot record to the end of the archive
func (r *ArchiveRepo) Append(snapshot domain.WordSet) error {
	if snapshot == nil {
		snapshot = domain.WordSet{}
	}

	line, err := json.Marshal(archiveRecord{
		ID:         uuid.New().String(),
		ArchivedAt: r.now().UTC(),
		Words:      snapshot,
	})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	line = append(line, '\n')

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create archive dir: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", r.path, err)
	}

	// A torn earlier write leaves no trailing newline; start a fresh line
	// so the new record stays readable on its own.
	torn, err := missingNewline(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to inspect %s: %w", r.path, err)
	}
	if torn {
		line = append([]byte{'\n'}, line...)
	}

	if _, err := f.Write(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append to %s: %w", r.path, err)
	}
	return f.Close()
}

// missingNewline reports whether a non-empty file does not end in '\n'
func missingNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] != '\n', nil
}

// List returns archived snapshots, newest first.
// Unreadable records are skipped; the records after them still load.
func (r *ArchiveRepo) List(limit int) []domain.Snapshot {
	f, err := os.Open(r.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.logger.Warn("Failed to open archive", zap.String("path", r.path), zap.Error(err))
		}
		return []domain.Snapshot{}
	}
	defer f.Close()

	var all []domain.Snapshot
	var skipped int
	err = EachRecord(f, func(raw json.RawMessage, err error) {
		if err != nil {
			skipped++
			r.logger.Warn("Skipping malformed archive record", zap.String("path", r.path), zap.Error(err))
			return
		}
		snap, ok := decodeRecord(raw)
		if !ok {
			skipped++
			return
		}
		all = append(all, snap)
	})
	if err != nil {
		r.logger.Warn("Stopped reading archive", zap.String("path", r.path), zap.Int("records", len(all)), zap.Error(err))
	}
	if skipped > 0 {
		r.logger.Debug("Skipped archive records", zap.String("path", r.path), zap.Int("skipped", skipped))
	}

	// newest first
	out := make([]domain.Snapshot, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func decodeRecord(raw json.RawMessage) (domain.Snapshot, bool) {
	var rec storedRecord
	if err := json.Unmarshal(raw, &rec); err != nil || rec.Words == nil {
		return domain.Snapshot{}, false
	}

	snap := domain.Snapshot{
		ID:    rec.ID,
		Words: decodeEntries(rec.Words).Words,
	}
	if rec.ArchivedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, rec.ArchivedAt); err == nil {
			snap.ArchivedAt = t
		}
	}
	return snap, true
}
