package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-calc/tally/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestRecordEntry(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	entry := &model.HistoryEntry{Expression: "2+3×4", Result: "14"}
	require.NoError(t, store.RecordEntry(ctx, entry))

	assert.NotZero(t, entry.ID)

	entries, err := store.ListEntries(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2+3×4", entries[0].Expression)
	assert.Equal(t, "14", entries[0].Result)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestRecordEntry_Validation(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		entry   *model.HistoryEntry
		wantErr error
		name    string
	}{
		{name: "nil entry", entry: nil, wantErr: ErrNilParameter},
		{name: "empty expression", entry: &model.HistoryEntry{Result: "1"}, wantErr: ErrEmptyString},
		{name: "empty result", entry: &model.HistoryEntry{Expression: "1"}, wantErr: ErrEmptyString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.RecordEntry(ctx, tt.entry)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListEntries(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	expressions := []string{"1+1", "2+2", "3+3"}
	results := []string{"2", "4", "6"}
	for i := range expressions {
		entry := &model.HistoryEntry{Expression: expressions[i], Result: results[i]}
		require.NoError(t, store.RecordEntry(ctx, entry))
	}

	// Newest first
	entries, err := store.ListEntries(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "3+3", entries[0].Expression)
	assert.Equal(t, "1+1", entries[2].Expression)

	// Limit caps the result
	entries, err = store.ListEntries(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "3+3", entries[0].Expression)
	assert.Equal(t, "2+2", entries[1].Expression)
}

func TestListEntries_Empty(t *testing.T) {
	store := newTestStorage(t)

	entries, err := store.ListEntries(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClearEntries(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	for _, expression := range []string{"1+1", "2+2"} {
		entry := &model.HistoryEntry{Expression: expression, Result: "4"}
		require.NoError(t, store.RecordEntry(ctx, entry))
	}

	removed, err := store.ClearEntries(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	entries, err := store.ListEntries(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Clearing an empty table removes nothing
	removed, err = store.ClearEntries(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, removed)
}
