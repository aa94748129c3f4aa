// Package tui is the terminal front-end: two input lines for words and
// translations, and a quiz view that hides each word behind its translation.
package tui

import (
	"fmt"
	"time"

	"shark/internal/domain"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// WordStore is the part of the word service the UI needs
type WordStore interface {
	LoadWords() domain.WordSet
	SaveLine(wordsLine, translationsLine string) (domain.SaveReport, error)
}

type screen int

const (
	screenInput screen = iota
	screenWords
)

const (
	inputWords = iota
	inputTranslations
)

// redisplayMsg fires every redisplay interval
type redisplayMsg time.Time

// Model holds the whole UI state
type Model struct {
	store    WordStore
	interval time.Duration
	logger   *zap.Logger

	screen screen
	inputs [2]textinput.Model
	focus  int

	words    domain.WordSet
	revealed []bool
	cursor   int

	status     string
	statusKind domain.SaveOutcome

	width  int
	height int
}

// NewModel creates the UI. A non-positive interval disables redisplay.
func NewModel(store WordStore, interval time.Duration, logger *zap.Logger) Model {
	words := textinput.New()
	words.Placeholder = "cat dog owl"
	words.Prompt = "› "
	words.Focus()

	translations := textinput.New()
	translations.Placeholder = "кот пёс сова"
	translations.Prompt = "› "

	return Model{
		store:    store,
		interval: interval,
		logger:   logger,
		inputs:   [2]textinput.Model{words, translations},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tick())
}

func (m Model) tick() tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return redisplayMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case redisplayMsg:
		m.logger.Debug("Redisplaying words")
		m = m.openWords()
		return m, m.tick()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == screenWords {
			return m.updateWords(msg), nil
		}
		return m.updateInput(msg)
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.save(), nil
	case "ctrl+w":
		return m.openWords(), nil
	case "tab", "shift+tab", "up", "down":
		return m.setFocus(1 - m.focus), nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateWords(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.words)-1 {
			m.cursor++
		}
	case " ":
		if m.cursor < len(m.revealed) {
			m.revealed[m.cursor] = !m.revealed[m.cursor]
		}
	case "a":
		for i := range m.revealed {
			m.revealed[i] = true
		}
	case "esc", "q":
		m.screen = screenInput
	}
	return m
}

func (m Model) setFocus(i int) Model {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

// openWords reloads the current set and shows it with every word hidden
func (m Model) openWords() Model {
	m.words = m.store.LoadWords()
	m.revealed = make([]bool, len(m.words))
	m.cursor = 0
	m.screen = screenWords
	return m
}

func (m Model) save() Model {
	report, err := m.store.SaveLine(m.inputs[inputWords].Value(), m.inputs[inputTranslations].Value())

	m.statusKind = domain.OutcomeOf(err)
	switch m.statusKind {
	case domain.OutcomeRejected:
		m.status = fmt.Sprintf("Rejected: %v", err)
	case domain.OutcomeFailed:
		m.logger.Error("Save failed", zap.Error(err))
		m.status = fmt.Sprintf("Failed: %v", err)
	default:
		m.status = fmt.Sprintf("Saved %d words", len(report.Saved))
		m.inputs[inputWords].Reset()
		m.inputs[inputTranslations].Reset()
		m = m.setFocus(inputWords)
	}
	return m
}
