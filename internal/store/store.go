// Package store owns the in-memory transaction sequence and budget mapping
// and their write-through persistence. Every mutation rewrites the backing
// store in full before returning; readers get copies, never live state.
package store

import (
	"context"
	"fmt"
	"sync"

	"expenses/internal/backend"
	"expenses/internal/core"
)

type Store struct {
	mu      sync.Mutex
	backend backend.Backend

	transactions []core.Transaction // insertion order
	budgets      core.Budgets
}

// Open loads both collections from the backend. Missing persisted data is an
// empty store, not an error.
func Open(ctx context.Context, b backend.Backend) (*Store, error) {
	transactions, err := b.LoadTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	budgets, err := b.LoadBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("load budgets: %w", err)
	}
	if budgets == nil {
		budgets = core.Budgets{}
	}
	return &Store{
		backend:      b,
		transactions: transactions,
		budgets:      budgets,
	}, nil
}

// Add validates the transaction, appends it to the sequence and persists the
// full sequence immediately. The append is rolled back if persisting fails.
func (s *Store) Add(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = append(s.transactions, t)
	if err := s.backend.SaveTransactions(ctx, s.transactions); err != nil {
		s.transactions = s.transactions[:len(s.transactions)-1]
		return err
	}
	return nil
}

// SetBudgets replaces the budget mapping wholesale and persists it.
func (s *Store) SetBudgets(ctx context.Context, budgets core.Budgets) error {
	if budgets == nil {
		budgets = core.Budgets{}
	}
	for _, limit := range budgets {
		if err := limit.Validate(); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.SaveBudgets(ctx, budgets); err != nil {
		return err
	}
	s.budgets = budgets.Clone()
	return nil
}

// ClearTransactions empties the sequence and persists the empty store.
func (s *Store) ClearTransactions(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.SaveTransactions(ctx, nil); err != nil {
		return err
	}
	s.transactions = nil
	return nil
}

// ClearBudgets empties the mapping and persists the empty store.
func (s *Store) ClearBudgets(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.SaveBudgets(ctx, core.Budgets{}); err != nil {
		return err
	}
	s.budgets = core.Budgets{}
	return nil
}

// Transactions returns a copy of the sequence in insertion order.
func (s *Store) Transactions() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.transactions...)
}

// Budgets returns a copy of the budget mapping.
func (s *Store) Budgets() core.Budgets {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budgets.Clone()
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
