package storage

import (
	"context"
	"sync"

	"expenses/internal/core"
)

// MemoryBackend keeps both collections in memory. It backs the "memory"
// backend selection and the package tests; nothing survives the process.
type MemoryBackend struct {
	mu           sync.Mutex
	transactions []core.Transaction
	budgets      core.Budgets

	// Save counters, handy for asserting write-through behavior in tests.
	TransactionSaves int
	BudgetSaves      int
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{budgets: core.Budgets{}}
}

func (b *MemoryBackend) LoadTransactions(_ context.Context) ([]core.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]core.Transaction(nil), b.transactions...), nil
}

func (b *MemoryBackend) SaveTransactions(_ context.Context, transactions []core.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.transactions = append([]core.Transaction(nil), transactions...)
	b.TransactionSaves++
	return nil
}

func (b *MemoryBackend) LoadBudgets(_ context.Context) (core.Budgets, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.budgets.Clone(), nil
}

func (b *MemoryBackend) SaveBudgets(_ context.Context, budgets core.Budgets) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.budgets = budgets.Clone()
	b.BudgetSaves++
	return nil
}

func (b *MemoryBackend) Close() error { return nil }
