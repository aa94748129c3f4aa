package tui

import (
	"fmt"
	"strings"

	"shark/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.screen == screenWords {
		return m.wordsView()
	}
	return m.inputView()
}

func (m Model) inputView() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("🦈 shark"))
	b.WriteString("\n\n")

	labels := [2]string{"Words", "Translations"}
	for i, in := range m.inputs {
		style := InputBorderStyle
		if i == m.focus {
			style = InputActiveStyle
		}
		b.WriteString(LabelStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(style.Render(in.View()))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle(m.statusKind).Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("enter save • tab switch • ctrl+w show words • ctrl+c quit"))
	return b.String()
}

func (m Model) wordsView() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("🦈 words (%d)", len(m.words))))
	b.WriteString("\n\n")

	if len(m.words) == 0 {
		b.WriteString(HiddenStyle.Render("No words yet"))
		b.WriteString("\n")
	}

	from, to := m.visibleRows()
	if from > 0 {
		b.WriteString(HelpStyle.Render(fmt.Sprintf("↑ %d more", from)))
		b.WriteString("\n")
	}

	for i := from; i < to; i++ {
		w := m.words[i]
		marker := "  "
		if i == m.cursor {
			marker = CursorStyle.Render("> ")
		}

		translation := w.Translation
		if translation == "" {
			translation = "?"
		}

		word := HiddenStyle.Render(hiddenWord)
		if m.revealed[i] {
			word = WordStyle.Render(w.Word)
		}

		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			marker,
			TranslationStyle.Render(translation),
			" — ",
			word,
		))
		b.WriteString("\n")
	}

	if to < len(m.words) {
		b.WriteString(HelpStyle.Render(fmt.Sprintf("↓ %d more", len(m.words)-to)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("space reveal • a reveal all • ↑/↓ move • esc back"))
	return b.String()
}

// wordsChrome is the number of lines wordsView draws besides word rows:
// title, blank, both scroll markers, blank and help.
const wordsChrome = 6

// visibleRows returns the half-open range of word rows that fits the
// terminal, keeping the cursor roughly centered. An unknown height shows
// every row.
func (m Model) visibleRows() (from, to int) {
	n := len(m.words)
	rows := m.height - wordsChrome
	if m.height <= 0 || rows >= n {
		return 0, n
	}
	if rows < 1 {
		rows = 1
	}

	from = m.cursor - rows/2
	if from < 0 {
		from = 0
	}
	if from > n-rows {
		from = n - rows
	}
	return from, from + rows
}

func statusStyle(kind domain.SaveOutcome) lipgloss.Style {
	switch kind {
	case domain.OutcomeRejected:
		return RejectedStyle
	case domain.OutcomeFailed:
		return FailedStyle
	}
	return SavedStyle
}
