package model

import "time"

// HistoryEntry records one successful evaluation.
type HistoryEntry struct {
	CreatedAt  time.Time
	Expression string
	Result     string
	ID         int64
}
