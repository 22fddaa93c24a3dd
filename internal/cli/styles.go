// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// ResultColor highlights computed results.
	ResultColor = lipgloss.Color("#27ae60")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#3498db")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#7f8c8d")

	// ResultStyle formats computed results.
	ResultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ResultColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// HeaderStyle formats table headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(InfoColor)
)
