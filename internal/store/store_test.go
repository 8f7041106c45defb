package store

import (
	"context"
	"testing"
	"time"

	"expenses/internal/core"
	"expenses/internal/storage"
)

func testTransaction(desc string, cents int64) core.Transaction {
	return core.Transaction{
		Date:        core.NewDate(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
		Description: desc,
		Category:    core.CategoryFood,
		Amount:      core.Money{Cents: cents},
	}
}

func TestOpenEmptyBackend(t *testing.T) {
	s, err := Open(context.Background(), storage.NewMemoryBackend())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := s.Transactions(); len(got) != 0 {
		t.Fatalf("expected empty sequence, got %v", got)
	}
	if got := s.Budgets(); len(got) != 0 {
		t.Fatalf("expected empty budgets, got %v", got)
	}
}

func TestAddIsWriteThrough(t *testing.T) {
	ctx := context.Background()
	b := storage.NewMemoryBackend()
	s, err := Open(ctx, b)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := s.Add(ctx, testTransaction("lunch", 1200)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add(ctx, testTransaction("dinner", 3000)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Every mutation persists immediately, no batching.
	if b.TransactionSaves != 2 {
		t.Fatalf("saves = %d, want 2", b.TransactionSaves)
	}
	persisted, _ := b.LoadTransactions(ctx)
	if len(persisted) != 2 {
		t.Fatalf("persisted %d transactions, want 2", len(persisted))
	}
}

func TestAddInvalidTransactionDoesNotMutate(t *testing.T) {
	ctx := context.Background()
	b := storage.NewMemoryBackend()
	s, err := Open(ctx, b)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	bad := testTransaction("bad", -1)
	if err := s.Add(ctx, bad); err == nil {
		t.Fatal("expected validation error")
	}
	if len(s.Transactions()) != 0 || b.TransactionSaves != 0 {
		t.Fatal("rejected add must not mutate or persist")
	}
}

func TestSetAndClearBudgets(t *testing.T) {
	ctx := context.Background()
	b := storage.NewMemoryBackend()
	s, err := Open(ctx, b)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	budgets := core.Budgets{core.CategoryFood: {Cents: 40000}}
	if err := s.SetBudgets(ctx, budgets); err != nil {
		t.Fatalf("SetBudgets: %v", err)
	}
	if got := s.Budgets()[core.CategoryFood].Cents; got != 40000 {
		t.Fatalf("budget = %d", got)
	}

	// The returned mapping is a copy; mutating it must not touch the store.
	s.Budgets()[core.CategoryFood] = core.Money{Cents: 1}
	if got := s.Budgets()[core.CategoryFood].Cents; got != 40000 {
		t.Fatalf("store budget mutated through copy: %d", got)
	}

	if err := s.ClearBudgets(ctx); err != nil {
		t.Fatalf("ClearBudgets: %v", err)
	}
	if len(s.Budgets()) != 0 {
		t.Fatal("budgets not cleared")
	}
	if b.BudgetSaves != 2 {
		t.Fatalf("budget saves = %d, want 2", b.BudgetSaves)
	}
}

func TestClearTransactions(t *testing.T) {
	ctx := context.Background()
	b := storage.NewMemoryBackend()
	s, err := Open(ctx, b)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Add(ctx, testTransaction("lunch", 1200)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.ClearTransactions(ctx); err != nil {
		t.Fatalf("ClearTransactions: %v", err)
	}
	if len(s.Transactions()) != 0 {
		t.Fatal("transactions not cleared")
	}
	persisted, _ := b.LoadTransactions(ctx)
	if len(persisted) != 0 {
		t.Fatal("clear must persist the empty store")
	}
}

func TestOpenSeedsFromBackend(t *testing.T) {
	ctx := context.Background()
	b := storage.NewMemoryBackend()
	if err := b.SaveTransactions(ctx, []core.Transaction{testTransaction("old", 500)}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := b.SaveBudgets(ctx, core.Budgets{core.CategoryFood: {Cents: 100}}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s, err := Open(ctx, b)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(s.Transactions()) != 1 || len(s.Budgets()) != 1 {
		t.Fatal("Open must seed from the backend")
	}
}
