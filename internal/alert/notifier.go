// Package alert delivers over-budget notifications. The check itself lives
// in core; this package only carries the signal to the user (console banner)
// or to an optional message broker.
package alert

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"expenses/internal/core"
)

// Notifier receives an over-budget alert. Delivery failures must not fail
// the transaction that triggered the alert; callers log and move on.
type Notifier interface {
	Notify(ctx context.Context, a core.BudgetAlert) error
}

// ConsoleNotifier prints an alert banner, the way an interactive tool shouts.
type ConsoleNotifier struct {
	Out io.Writer
}

func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{Out: out}
}

func (n *ConsoleNotifier) Notify(_ context.Context, a core.BudgetAlert) error {
	banner := "!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!"
	_, err := fmt.Fprintf(n.Out, "\n%s\n BUDGET ALERT: You've exceeded your %s budget!\n Budget: $%s | Spent: $%s\n%s\n",
		banner, a.Category, a.Budget, a.Spent, banner)
	return err
}

// Multi fans an alert out to several notifiers. Errors are collected but
// each notifier still runs.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, a core.BudgetAlert) error {
	var firstErr error
	for _, n := range m {
		if err := n.Notify(ctx, a); err != nil {
			slog.ErrorContext(ctx, "Alert notifier failed", "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Close releases every closable notifier in the fan-out.
func (m Multi) Close() error {
	var firstErr error
	for _, n := range m {
		if c, ok := n.(io.Closer); ok {
			if err := c.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
