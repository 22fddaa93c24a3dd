package tui

import "github.com/tally-calc/tally/internal/model"

// historyLoadedMsg delivers entries for the history panel.
type historyLoadedMsg struct {
	err     error
	entries []model.HistoryEntry
}
