package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(errorText)
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(errorText)
	}

	h.ResetState(userID)
	if !authorized {
		return c.Send(passwordText)
	}
	return c.Send(mainMenuText, mainMenuMarkup())
}

// handleMainMenu returns to the main menu from an inline button
func (h *Handler) handleMainMenu(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.editOrSend(c, mainMenuText, mainMenuMarkup())
}
