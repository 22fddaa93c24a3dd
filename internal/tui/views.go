package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	buttonWidth  = 7
	buttonGap    = 1
	displayWidth = buttonWidth*4 + buttonGap*3
)

// View renders the calculator.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render("Tally"),
		m.renderDisplay(),
		m.renderKeypad(),
		"",
		m.renderStatus(),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.showHistory {
		content = lipgloss.JoinHorizontal(
			lipgloss.Top,
			content,
			m.renderHistory(),
		)
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			content,
		)
	}
	return content
}

// renderDisplay renders the single-line expression display.
func (m Model) renderDisplay() string {
	text := m.engine.Display()

	// Keep the tail visible when the expression outgrows the display.
	if runes := []rune(text); len(runes) > displayWidth-2 {
		text = string(runes[len(runes)-(displayWidth-2):])
	}

	return m.theme.Display.Width(displayWidth).Render(text)
}

// renderKeypad renders the button grid with the cursor highlighted.
func (m Model) renderKeypad() string {
	rows := make([]string, 0, len(keypad))

	for r, row := range keypad {
		cells := make([]string, 0, len(row))
		for c, button := range row {
			width := buttonWidth
			if button.Span > 1 {
				width = buttonWidth*button.Span + buttonGap*(button.Span-1)
			}

			style := m.buttonStyle(button.Kind)
			if r == m.row && c == m.col {
				style = m.theme.FocusedButton
			}

			cells = append(cells, style.Width(width).Render(button.Label))
		}
		rows = append(rows, strings.Join(cells, strings.Repeat(" ", buttonGap)))
	}

	return strings.Join(rows, "\n")
}

func (m Model) buttonStyle(kind ButtonKind) lipgloss.Style {
	switch kind {
	case ButtonOperator, ButtonClear, ButtonBackspace:
		return m.theme.OperatorButton
	case ButtonEquals:
		return m.theme.EqualsButton
	default:
		return m.theme.DigitButton
	}
}

// renderStatus renders the error line, or the help line when there is none.
func (m Model) renderStatus() string {
	if m.errMsg != "" {
		return m.theme.Error.Width(displayWidth).Render(m.errMsg)
	}

	parts := make([]string, 0, 4)
	for _, binding := range m.keymap.ShortHelp() {
		help := binding.Help()
		parts = append(parts, fmt.Sprintf("%s %s", help.Key, help.Desc))
	}
	return m.theme.Help.Width(displayWidth).Render(strings.Join(parts, " • "))
}

// renderHistory renders the recent-calculations side panel.
func (m Model) renderHistory() string {
	lines := []string{m.theme.HistoryTitle.Render("History")}

	if len(m.entries) == 0 {
		lines = append(lines, m.theme.HistoryEntry.Render("no calculations yet"))
	}
	for _, entry := range m.entries {
		lines = append(lines, fmt.Sprintf("%s %s",
			m.theme.HistoryEntry.Render(entry.Expression+" ="),
			m.theme.HistoryResult.Render(entry.Result),
		))
	}

	return m.theme.HistoryBox.Render(strings.Join(lines, "\n"))
}
