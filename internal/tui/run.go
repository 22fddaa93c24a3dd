package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tally-calc/tally/internal/engine"
)

// DefaultHistoryLimit caps the entries shown in the history panel.
const DefaultHistoryLimit = 10

// Config holds the dependencies for running the calculator TUI.
type Config struct {
	// History persists evaluations and feeds the history panel.
	// Nil disables both.
	History      HistoryStore
	HistoryLimit int
}

// Run starts the calculator and blocks until the user quits or the context
// is cancelled.
func Run(ctx context.Context, cfg Config) error {
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	// The model records history itself after each evaluation, so the engine
	// runs without a store here; wiring both would write every entry twice.
	eng := engine.New(nil)
	m := newModel(ctx, eng, cfg.History, limit)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("calculator exited: %w", err)
	}
	return nil
}
