package handler

import (
	"fmt"
	"html"
	"strings"

	"shark/internal/domain"
	"shark/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(errorText)
	}

	if !authorized {
		ok, err := h.authService.Authorize(userID, text)
		if err != nil {
			h.logger.Error("Failed to authorize user", zap.Error(err))
			return c.Send(errorText)
		}
		if !ok {
			return c.Send("Неверный пароль")
		}

		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		h.ResetState(userID)
		return c.Send("✅ Доступ разрешён!\n\n"+mainMenuText, mainMenuMarkup())
	}

	state := h.GetState(userID)
	if state.State == domain.StateWaitingTranslations {
		return h.submitTranslations(c, state.PendingWords, text)
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return c.Send("Пришли слова через пробел")
	}

	h.SetState(userID, &domain.StateData{
		State:        domain.StateWaitingTranslations,
		PendingWords: words,
	})
	return c.Send(fmt.Sprintf("Жду переводы (%d)", len(words)), cancelMarkup())
}

// submitTranslations saves the pending words with the translations line.
// On rejection the user stays in the translations step and can resend.
func (h *Handler) submitTranslations(c tele.Context, pending []string, line string) error {
	userID := c.Sender().ID
	translations := strings.Fields(line)

	report, err := h.wordService.SaveWords(pending, translations)

	switch domain.OutcomeOf(err) {
	case domain.OutcomeRejected:
		return c.Send(fmt.Sprintf(
			"Слов %d, а переводов %d. Пришли переводы ещё раз.",
			len(pending), len(translations),
		), cancelMarkup())

	case domain.OutcomeFailed:
		h.logger.Error("Failed to save words",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		h.ResetState(userID)
		return c.Send("Не удалось сохранить слова. Попробуйте ещё раз.", mainMenuMarkup())
	}

	h.logger.Info("Words saved",
		zap.Int64("user_id", userID),
		zap.Int("entries", len(report.Saved)),
	)
	h.ResetState(userID)
	return c.Send(renderSaved(report), tele.ModeHTML, mainMenuMarkup())
}

// maxDiffLines bounds the diff shown after a save
const maxDiffLines = 30

// renderSaved summarises a save with a diff against the archived set
func renderSaved(report domain.SaveReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Сохранено слов: %d", len(report.Saved))

	diff := service.Diff(report.Previous, report.Saved)
	if diff == "" {
		return b.String()
	}

	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	more := 0
	if len(lines) > maxDiffLines {
		more = len(lines) - maxDiffLines
		lines = lines[:maxDiffLines]
	}
	for i, l := range lines {
		lines[i] = html.EscapeString(clip(l))
	}

	b.WriteString("\n\n<pre>")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("</pre>")
	if more > 0 {
		fmt.Fprintf(&b, "\n… и ещё строк: %d", more)
	}
	return b.String()
}

// renderQuiz shows each translation with its word behind a spoiler,
// split into messages that fit Telegram's limit
func renderQuiz(words domain.WordSet) []string {
	lines := make([]string, 0, len(words)+2)
	lines = append(lines, "🦈 Вспомни слова:", "")
	for i, w := range words {
		translation := w.Translation
		if translation == "" {
			translation = "?"
		}
		lines = append(lines, fmt.Sprintf("%d. %s — <tg-spoiler>%s</tg-spoiler>",
			i+1, html.EscapeString(clip(translation)), html.EscapeString(clip(w.Word))))
	}
	return chunkLines(lines)
}

// historyLinesPerSnapshot caps how many entries of one snapshot are listed
const historyLinesPerSnapshot = 20

// renderHistory lists archived snapshots, newest first
func renderHistory(snaps []domain.Snapshot) []string {
	lines := []string{"🗂 Прошлые наборы:"}
	for _, s := range snaps {
		lines = append(lines, "", fmt.Sprintf("<b>%s</b> (%d)", html.EscapeString(s.DisplayString()), len(s.Words)))

		entries := s.Words.Lines()
		more := 0
		if len(entries) > historyLinesPerSnapshot {
			more = len(entries) - historyLinesPerSnapshot
			entries = entries[:historyLinesPerSnapshot]
		}
		for _, line := range entries {
			lines = append(lines, html.EscapeString(clip(line)))
		}
		if more > 0 {
			lines = append(lines, fmt.Sprintf("… и ещё %d", more))
		}
	}
	return chunkLines(lines)
}
