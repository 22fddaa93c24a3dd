// Package engine owns the calculator's mutable expression state and the
// evaluate contract: on success the formatted result replaces the expression
// so input chains from it, on any failure the expression resets to empty.
package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tally-calc/tally/internal/common"
	"github.com/tally-calc/tally/internal/expr"
	"github.com/tally-calc/tally/internal/model"
)

// HistoryStore records successful evaluations.
type HistoryStore interface {
	RecordEntry(ctx context.Context, entry *model.HistoryEntry) error
}

// Engine holds the in-progress expression. It is not safe for concurrent use;
// all mutation happens on the UI event loop or a single CLI invocation.
type Engine struct {
	history    HistoryStore
	expression string
}

// New creates an engine. A nil history store disables recording.
func New(history HistoryStore) *Engine {
	return &Engine{history: history}
}

// Append concatenates a token onto the expression. No validation happens
// here; malformed intermediate states like "5++" only fail at Evaluate.
func (e *Engine) Append(token string) {
	e.expression += token
}

// Backspace removes the last rune. Operator glyphs are multi-byte, so this
// must not slice bytes. No-op when the expression is already empty.
func (e *Engine) Backspace() {
	if e.expression == "" {
		return
	}
	runes := []rune(e.expression)
	e.expression = string(runes[:len(runes)-1])
}

// Clear resets the expression to empty.
func (e *Engine) Clear() {
	e.expression = ""
}

// Expression returns the raw expression string.
func (e *Engine) Expression() string {
	return e.expression
}

// Display returns the expression as the UI should show it: "0" when empty.
func (e *Engine) Display() string {
	if e.expression == "" {
		return "0"
	}
	return e.expression
}

// Evaluate computes the current expression. On success the formatted result
// becomes the new expression and is recorded to history; on failure the
// expression resets to empty and a user-presentable error is returned.
func (e *Engine) Evaluate(ctx context.Context) (string, error) {
	raw := e.expression

	value, err := expr.Evaluate(raw)
	if err != nil {
		e.expression = ""
		return "", classify(err)
	}

	result := expr.Format(value)
	e.expression = result

	if e.history != nil {
		entry := &model.HistoryEntry{Expression: raw, Result: result}
		if recordErr := e.history.RecordEntry(ctx, entry); recordErr != nil {
			// History is best-effort; the result is still valid.
			slog.Warn("failed to record history entry", "error", recordErr)
		}
	}

	return result, nil
}

// classify maps evaluator errors onto the messages shown to the user.
func classify(err error) error {
	switch {
	case errors.Is(err, common.ErrDivisionByZero):
		return common.NewUserError("Cannot divide by zero!", err)
	case errors.Is(err, common.ErrInvalidExpression):
		return common.NewUserError("Invalid expression! Please check your input.", err)
	default:
		return common.NewUserError("An error occurred: "+err.Error(), err)
	}
}
