package storage

import (
	"context"
	"fmt"

	"github.com/tally-calc/tally/internal/model"
)

// RecordEntry appends a successful evaluation to the history.
func (s *SQLiteStorage) RecordEntry(ctx context.Context, entry *model.HistoryEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateEntry(entry); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO history (expression, result) VALUES (?, ?)`,
		entry.Expression, entry.Result)
	if err != nil {
		return fmt.Errorf("failed to record history entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get history entry id: %w", err)
	}
	entry.ID = id

	return nil
}

// ListEntries returns the most recent history entries, newest first.
// A limit of 0 or less returns everything.
func (s *SQLiteStorage) ListEntries(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, expression, result, created_at FROM history ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []model.HistoryEntry
	for rows.Next() {
		var entry model.HistoryEntry
		if err := rows.Scan(&entry.ID, &entry.Expression, &entry.Result, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history entries: %w", err)
	}

	return entries, nil
}

// ClearEntries deletes all history entries and returns how many were removed.
func (s *SQLiteStorage) ClearEntries(ctx context.Context) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM history`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared history entries: %w", err)
	}
	return removed, nil
}
