package service

import (
	"strings"
	"sync"

	"shark/internal/domain"
	"shark/internal/repository"

	"go.uber.org/zap"
)

// WordService is the load/save boundary used by front-ends
type WordService struct {
	wordRepo    repository.WordRepository
	archiveRepo repository.ArchiveRepository
	logger      *zap.Logger

	// serializes saves; bot updates arrive on several goroutines
	saveMux sync.Mutex
}

// NewWordService creates a new word service
func NewWordService(
	wordRepo repository.WordRepository,
	archiveRepo repository.ArchiveRepository,
	logger *zap.Logger,
) *WordService {
	return &WordService{
		wordRepo:    wordRepo,
		archiveRepo: archiveRepo,
		logger:      logger,
	}
}

// LoadWords returns the current word set. It never fails.
func (s *WordService) LoadWords() domain.WordSet {
	return s.wordRepo.Load()
}

// SaveWords archives the current set and replaces it with the given pairs.
//
// A count mismatch returns *domain.RejectedError and writes nothing. A write
// failure returns *domain.WriteError naming the store that failed; when the
// archive cannot be written the current set is left untouched.
func (s *WordService) SaveWords(words, translations []string) (domain.SaveReport, error) {
	if len(words) != len(translations) {
		err := &domain.RejectedError{Words: len(words), Translations: len(translations)}
		s.logger.Warn("Save rejected",
			zap.Int("words", len(words)),
			zap.Int("translations", len(translations)),
		)
		return domain.SaveReport{}, err
	}

	s.saveMux.Lock()
	defer s.saveMux.Unlock()

	// Order matters: load old, archive old, write new
	previous := s.wordRepo.Load()

	if err := s.archiveRepo.Append(previous); err != nil {
		s.logger.Error("Failed to archive word set", zap.Error(err), zap.Int("entries", len(previous)))
		return domain.SaveReport{}, &domain.WriteError{Target: domain.TargetArchive, Err: err}
	}

	next := domain.Pair(words, translations)
	if err := s.wordRepo.Replace(next); err != nil {
		s.logger.Error("Failed to write word set", zap.Error(err), zap.Int("entries", len(next)))
		return domain.SaveReport{}, &domain.WriteError{Target: domain.TargetRepository, Err: err}
	}

	s.logger.Info("Word set saved",
		zap.Int("entries", len(next)),
		zap.Int("archived_entries", len(previous)),
	)

	return domain.SaveReport{Saved: next, Previous: previous}, nil
}

// SaveLine splits both input lines on whitespace and saves the result
func (s *WordService) SaveLine(wordsLine, translationsLine string) (domain.SaveReport, error) {
	return s.SaveWords(strings.Fields(wordsLine), strings.Fields(translationsLine))
}

// History returns up to limit archived snapshots, newest first
func (s *WordService) History(limit int) []domain.Snapshot {
	return s.archiveRepo.List(limit)
}
