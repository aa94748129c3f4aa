package service

import (
	"context"
	"time"

	"shark/internal/domain"

	"go.uber.org/zap"
)

// Notifier shows a word set to the user
type Notifier interface {
	NotifyWords(words domain.WordSet) error
}

// RedisplayService periodically re-displays the current word set
type RedisplayService struct {
	words    *WordService
	notifier Notifier
	interval time.Duration
	logger   *zap.Logger
}

// NewRedisplayService creates a new redisplay service
func NewRedisplayService(words *WordService, notifier Notifier, interval time.Duration, logger *zap.Logger) *RedisplayService {
	return &RedisplayService{
		words:    words,
		notifier: notifier,
		interval: interval,
		logger:   logger,
	}
}

// Run fires on every interval until ctx is cancelled.
// It does not fire at start.
func (s *RedisplayService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Redisplay job started", zap.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Redisplay job stopped")
			return
		case <-ticker.C:
			s.Fire()
		}
	}
}

// Fire loads the word set once and hands it to the notifier
func (s *RedisplayService) Fire() {
	words := s.words.LoadWords()
	if err := s.notifier.NotifyWords(words); err != nil {
		s.logger.Error("Failed to redisplay words", zap.Error(err), zap.Int("entries", len(words)))
		return
	}
	s.logger.Debug("Words redisplayed", zap.Int("entries", len(words)))
}
