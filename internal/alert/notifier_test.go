package alert

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"expenses/internal/core"
)

func testAlert() core.BudgetAlert {
	return core.BudgetAlert{
		Category: core.CategoryFood,
		Budget:   core.Money{Cents: 400},
		Spent:    core.Money{Cents: 450},
		Month:    time.June,
		Year:     2024,
	}
}

func TestConsoleNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf)
	if err := n.Notify(context.Background(), testAlert()); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"BUDGET ALERT", "Food", "$4.00", "$4.50"} {
		if !strings.Contains(out, want) {
			t.Fatalf("banner missing %q:\n%s", want, out)
		}
	}
}

type failingNotifier struct{ err error }

func (f failingNotifier) Notify(context.Context, core.BudgetAlert) error { return f.err }

func TestMultiRunsEveryNotifier(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")
	m := Multi{failingNotifier{err: boom}, NewConsoleNotifier(&buf)}

	err := m.Notify(context.Background(), testAlert())
	if !errors.Is(err, boom) {
		t.Fatalf("expected first error back, got %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("later notifiers must still run after a failure")
	}
}
