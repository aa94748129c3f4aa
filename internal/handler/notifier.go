package handler

import (
	"errors"
	"fmt"

	"shark/internal/domain"
	"shark/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// messageSender is the part of *tele.Bot the notifier needs
type messageSender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Notifier pushes the word quiz to every authorized user.
// It implements service.Notifier.
type Notifier struct {
	api         messageSender
	authService *service.AuthService
	logger      *zap.Logger
}

// NewNotifier creates a notifier sending through api
func NewNotifier(api messageSender, authService *service.AuthService, logger *zap.Logger) *Notifier {
	return &Notifier{api: api, authService: authService, logger: logger}
}

// NotifyWords sends words to all authorized users. An empty set sends nothing.
func (n *Notifier) NotifyWords(words domain.WordSet) error {
	if len(words) == 0 {
		return nil
	}

	users, err := n.authService.AuthorizedUsers()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	chunks := renderQuiz(words)
	var errs []error
	for _, id := range users {
		if err := n.send(tele.ChatID(id), chunks); err != nil {
			n.logger.Warn("Failed to send words", zap.Int64("user_id", id), zap.Error(err))
			errs = append(errs, fmt.Errorf("user %d: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// send delivers chunks in order and stops at the first failure
func (n *Notifier) send(to tele.Recipient, chunks []string) error {
	for i, chunk := range chunks {
		opts := []interface{}{tele.ModeHTML}
		if i == len(chunks)-1 {
			opts = append(opts, mainMenuMarkup())
		}
		if _, err := n.api.Send(to, chunk, opts...); err != nil {
			return err
		}
	}
	return nil
}
