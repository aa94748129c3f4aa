package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Deep      = lipgloss.Color("#0B2545")
	Sea       = lipgloss.Color("#13315C")
	Fin       = lipgloss.Color("#8DA9C4")
	Foam      = lipgloss.Color("#EEF4ED")
	Coral     = lipgloss.Color("#FF6F59")
	Kelp      = lipgloss.Color("#43AA8B")
	Sand      = lipgloss.Color("#F2C14E")
	MutedGray = lipgloss.Color("#6C757D")

	TitleStyle = lipgloss.NewStyle().
			Background(Sea).
			Foreground(Foam).
			Bold(true).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Fin).
			Bold(true)

	// Input
	InputBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(MutedGray).
				Padding(0, 1)

	InputActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Fin).
				Padding(0, 1)

	// Status line
	SavedStyle = lipgloss.NewStyle().
			Foreground(Kelp).
			Bold(true)

	RejectedStyle = lipgloss.NewStyle().
			Foreground(Sand).
			Bold(true)

	FailedStyle = lipgloss.NewStyle().
			Foreground(Coral).
			Bold(true)

	// Words view
	TranslationStyle = lipgloss.NewStyle().
				Foreground(Foam)

	WordStyle = lipgloss.NewStyle().
			Foreground(Kelp).
			Bold(true)

	HiddenStyle = lipgloss.NewStyle().
			Foreground(MutedGray)

	CursorStyle = lipgloss.NewStyle().
			Foreground(Sand).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedGray)
)

// hiddenWord stands in for a word that has not been revealed yet
const hiddenWord = "•••"
