package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Already edited by another callback: acknowledge, don't send a new message
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// editOrSend edits the callback's message, or sends a new one for commands
// and for messages that can no longer be edited
func (h *Handler) editOrSend(c tele.Context, text string, opts ...interface{}) error {
	if c.Callback() == nil {
		return c.Send(text, opts...)
	}
	if err := c.Edit(text, opts...); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send(text, opts...)
	}
	return c.Respond()
}

// handleCallback handles callbacks that did not match a button by unique id
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("data_raw", callback.Data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	key := callback.Unique
	if key == "" {
		key = data
	}

	switch key {
	case btnShowWords.Unique:
		return h.handleShowWords(c)
	case btnHistory.Unique:
		return h.handleHistory(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	case btnBack.Unique, btnMainMenu.Unique:
		return h.handleMainMenu(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleShowWords shows the current set as a reveal-on-tap quiz
func (h *Handler) handleShowWords(c tele.Context) error {
	words := h.wordService.LoadWords()
	if len(words) == 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Слов пока нет",
			ShowAlert: true,
		})
	}
	return h.editOrSendChunks(c, renderQuiz(words), backMarkup())
}

// handleHistory shows the most recent archived sets
func (h *Handler) handleHistory(c tele.Context) error {
	snaps := h.wordService.History(historyLimit)
	if len(snaps) == 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Архив пуст",
			ShowAlert: true,
		})
	}
	return h.editOrSendChunks(c, renderHistory(snaps), backMarkup())
}

// handleCancel drops pending words and returns to the main menu
func (h *Handler) handleCancel(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.editOrSend(c, mainMenuText, mainMenuMarkup())
}
