// Package tui implements the interactive calculator surface: a single-line
// display over a keypad grid, driven entirely by keyboard input.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tally-calc/tally/internal/common"
	"github.com/tally-calc/tally/internal/engine"
	"github.com/tally-calc/tally/internal/model"
	"github.com/tally-calc/tally/internal/tui/themes"
)

// HistoryStore is what the TUI needs from persistence.
type HistoryStore interface {
	engine.HistoryStore
	ListEntries(ctx context.Context, limit int) ([]model.HistoryEntry, error)
}

// Model holds the main TUI state.
type Model struct {
	ctx          context.Context
	engine       *engine.Engine
	history      HistoryStore
	theme        themes.Theme
	errMsg       string
	entries      []model.HistoryEntry
	keymap       KeyMap
	historyLimit int
	row          int
	col          int
	width        int
	height       int
	showHistory  bool
	quitting     bool
}

// newModel creates a new model wired to the given engine and history store.
func newModel(ctx context.Context, eng *engine.Engine, history HistoryStore, historyLimit int) Model {
	return Model{
		ctx:          ctx,
		engine:       eng,
		history:      history,
		keymap:       DefaultKeyMap(),
		theme:        themes.Default,
		historyLimit: historyLimit,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
	}
	if m.history != nil {
		cmds = append(cmds, m.loadHistoryCmd())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case historyLoadedMsg:
		if msg.err == nil {
			m.entries = msg.entries
		}
	}

	return m, nil
}

// handleKey routes a key press. Any key clears a lingering error message,
// matching the original's dismiss-on-next-input dialog behavior.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Evaluate):
		return m.evaluate()

	case key.Matches(msg, m.keymap.Backspace):
		m.engine.Backspace()

	case key.Matches(msg, m.keymap.Clear):
		m.engine.Clear()

	case key.Matches(msg, m.keymap.ToggleHistory):
		m.showHistory = !m.showHistory
		if m.showHistory && m.history != nil {
			return m, m.loadHistoryCmd()
		}

	case key.Matches(msg, m.keymap.Press):
		return m.pressSelected()

	case key.Matches(msg, m.keymap.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keymap.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keymap.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keymap.Right):
		m.moveCursor(0, 1)

	default:
		if token, ok := tokenForKey(msg.String()); ok {
			m.engine.Append(token)
		}
	}

	return m, nil
}

// pressSelected activates the button under the grid cursor.
func (m Model) pressSelected() (tea.Model, tea.Cmd) {
	button := keypad[m.row][m.col]

	switch button.Kind {
	case ButtonClear:
		m.engine.Clear()
	case ButtonBackspace:
		m.engine.Backspace()
	case ButtonEquals:
		return m.evaluate()
	case ButtonDigit, ButtonOperator:
		m.engine.Append(button.Label)
	}

	return m, nil
}

// moveCursor shifts the grid cursor, clamping to the keypad bounds. The
// bottom row is one button short, so the column clamps per row.
func (m *Model) moveCursor(dRow, dCol int) {
	m.row = clamp(m.row+dRow, 0, len(keypad)-1)
	m.col = clamp(m.col+dCol, 0, len(keypad[m.row])-1)
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// evaluate runs the engine synchronously on the update loop, so the engine is
// only ever touched from one goroutine. Only the history write and the panel
// refresh happen off-loop, over values captured before the command runs.
func (m Model) evaluate() (tea.Model, tea.Cmd) {
	expression := m.engine.Expression()
	result, err := m.engine.Evaluate(m.ctx)
	if err != nil {
		m.errMsg = common.UserMessage(err)
		return m, nil
	}
	if m.history != nil {
		return m, m.recordHistoryCmd(expression, result)
	}
	return m, nil
}

// recordHistoryCmd persists a finished evaluation and reloads the panel.
func (m Model) recordHistoryCmd(expression, result string) tea.Cmd {
	history := m.history
	ctx := m.ctx
	limit := m.historyLimit
	return func() tea.Msg {
		entry := &model.HistoryEntry{Expression: expression, Result: result}
		if err := history.RecordEntry(ctx, entry); err != nil {
			slog.Warn("failed to record history entry", "error", err)
		}
		entries, err := history.ListEntries(ctx, limit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

// loadHistoryCmd refreshes the history panel entries.
func (m Model) loadHistoryCmd() tea.Cmd {
	history := m.history
	ctx := m.ctx
	limit := m.historyLimit
	return func() tea.Msg {
		entries, err := history.ListEntries(ctx, limit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}
