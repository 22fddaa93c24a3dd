package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-calc/tally/internal/model"
)

func runHistory(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seedHistory(t *testing.T, entries ...model.HistoryEntry) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "history.db")
	viper.Set("history.path", dbPath)
	t.Cleanup(viper.Reset)

	store, err := openHistory(context.Background())
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	for i := range entries {
		require.NoError(t, store.RecordEntry(context.Background(), &entries[i]))
	}
}

func TestHistoryListCommand(t *testing.T) {
	seedHistory(t,
		model.HistoryEntry{Expression: "2+3×4", Result: "14"},
		model.HistoryEntry{Expression: "8÷2", Result: "4"},
	)

	out, err := runHistory(t, listHistoryCmd())
	require.NoError(t, err)

	assert.Contains(t, out, "Expression")
	assert.Contains(t, out, "2+3×4")
	assert.Contains(t, out, "14")
	assert.Contains(t, out, "8÷2")
}

func TestHistoryListCommand_Empty(t *testing.T) {
	seedHistory(t)

	out, err := runHistory(t, listHistoryCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "No calculations yet")
}

func TestHistoryListCommand_Disabled(t *testing.T) {
	viper.Set("history.disabled", true)
	t.Cleanup(viper.Reset)

	out, err := runHistory(t, listHistoryCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "History is disabled.")
}

func TestHistoryClearCommand(t *testing.T) {
	seedHistory(t,
		model.HistoryEntry{Expression: "1+1", Result: "2"},
		model.HistoryEntry{Expression: "2+2", Result: "4"},
	)

	out, err := runHistory(t, clearHistoryCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 2 history entries.")

	out, err = runHistory(t, listHistoryCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "No calculations yet")
}
