// Package themes defines the visual styles for the calculator TUI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title          lipgloss.Style
	Display        lipgloss.Style
	DigitButton    lipgloss.Style
	OperatorButton lipgloss.Style
	EqualsButton   lipgloss.Style
	FocusedButton  lipgloss.Style
	Error          lipgloss.Style
	Help           lipgloss.Style
	HistoryBox     lipgloss.Style
	HistoryTitle   lipgloss.Style
	HistoryEntry   lipgloss.Style
	HistoryResult  lipgloss.Style
	Background     lipgloss.Color
	Surface        lipgloss.Color
	Accent         lipgloss.Color
	Confirm        lipgloss.Color
	Foreground     lipgloss.Color
	Muted          lipgloss.Color
}

// The classic dark calculator palette: red operator keys, a green equals
// key, a light display on a slate body. Every style below draws from these
// so a palette change stays a one-line edit.
var (
	background = lipgloss.Color("#2c3e50")
	surface    = lipgloss.Color("#34495e")
	pressed    = lipgloss.Color("#1a252f")
	accent     = lipgloss.Color("#e74c3c")
	confirm    = lipgloss.Color("#27ae60")
	foreground = lipgloss.Color("#ecf0f1")
	muted      = lipgloss.Color("#7f8c8d")
	keyText    = lipgloss.Color("#ffffff")
)

// Default is the default theme.
var Default = Theme{
	Background: background,
	Surface:    surface,
	Accent:     accent,
	Confirm:    confirm,
	Foreground: foreground,
	Muted:      muted,

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(foreground).
		MarginBottom(1),

	Display: lipgloss.NewStyle().
		Bold(true).
		Background(foreground).
		Foreground(background).
		Align(lipgloss.Right).
		Padding(0, 1).
		MarginBottom(1),

	// Button styles
	DigitButton: lipgloss.NewStyle().
		Background(surface).
		Foreground(foreground).
		Align(lipgloss.Center).
		Padding(0, 1),
	OperatorButton: lipgloss.NewStyle().
		Bold(true).
		Background(accent).
		Foreground(keyText).
		Align(lipgloss.Center).
		Padding(0, 1),
	EqualsButton: lipgloss.NewStyle().
		Bold(true).
		Background(confirm).
		Foreground(keyText).
		Align(lipgloss.Center).
		Padding(0, 1),
	FocusedButton: lipgloss.NewStyle().
		Bold(true).
		Background(pressed).
		Foreground(keyText).
		Align(lipgloss.Center).
		Padding(0, 1),

	// Status styles
	Error: lipgloss.NewStyle().
		Bold(true).
		Foreground(accent),
	Help: lipgloss.NewStyle().
		Foreground(muted),

	// History panel
	HistoryBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1).
		MarginLeft(2),
	HistoryTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(foreground),
	HistoryEntry: lipgloss.NewStyle().
		Foreground(muted),
	HistoryResult: lipgloss.NewStyle().
		Bold(true).
		Foreground(foreground),
}
