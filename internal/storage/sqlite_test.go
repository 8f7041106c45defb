package storage

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"expenses/internal/core"
)

func TestSQLiteRoundTrip(t *testing.T) {
	b, err := NewSQLiteBackend(filepath.Join(t.TempDir(), "expenses.db"))
	if err != nil {
		t.Fatalf("NewSQLiteBackend: %v", err)
	}
	defer b.Close()
	ctx := context.Background()

	want := []core.Transaction{
		{
			Date:        core.NewDate(time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)),
			Description: "groceries",
			Category:    core.CategoryFood,
			Amount:      core.Money{Cents: 10000},
		},
		{
			Date:        core.NewDate(time.Date(2024, 2, 10, 18, 15, 0, 0, time.UTC)),
			Description: "bus pass",
			Category:    core.CategoryTransportation,
			Amount:      core.Money{Cents: 250},
		},
	}
	if err := b.SaveTransactions(ctx, want); err != nil {
		t.Fatalf("SaveTransactions: %v", err)
	}
	got, err := b.LoadTransactions(ctx)
	if err != nil {
		t.Fatalf("LoadTransactions: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}

	// Saves replace wholesale, they do not append.
	if err := b.SaveTransactions(ctx, want[:1]); err != nil {
		t.Fatalf("SaveTransactions: %v", err)
	}
	got, err = b.LoadTransactions(ctx)
	if err != nil {
		t.Fatalf("LoadTransactions: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected wholesale replace, got %d rows", len(got))
	}

	budgets := core.Budgets{core.CategoryFood: {Cents: 40000}}
	if err := b.SaveBudgets(ctx, budgets); err != nil {
		t.Fatalf("SaveBudgets: %v", err)
	}
	loaded, err := b.LoadBudgets(ctx)
	if err != nil {
		t.Fatalf("LoadBudgets: %v", err)
	}
	if !reflect.DeepEqual(loaded, budgets) {
		t.Fatalf("budget round trip mismatch: %v != %v", loaded, budgets)
	}
}

func TestSQLiteEmptyDatabase(t *testing.T) {
	b, err := NewSQLiteBackend(filepath.Join(t.TempDir(), "expenses.db"))
	if err != nil {
		t.Fatalf("NewSQLiteBackend: %v", err)
	}
	defer b.Close()

	txs, err := b.LoadTransactions(context.Background())
	if err != nil {
		t.Fatalf("LoadTransactions: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("expected empty store, got %v", txs)
	}
	budgets, err := b.LoadBudgets(context.Background())
	if err != nil {
		t.Fatalf("LoadBudgets: %v", err)
	}
	if len(budgets) != 0 {
		t.Fatalf("expected empty budgets, got %v", budgets)
	}
}
