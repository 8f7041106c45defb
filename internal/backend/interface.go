package backend

import (
	"context"

	"expenses/internal/core"
)

// Backend is the persistence boundary of the store. Loads return the whole
// collection (missing data reads as empty); saves replace it wholesale,
// mirroring the write-through full-rewrite semantics of the store.
type Backend interface {
	LoadTransactions(ctx context.Context) ([]core.Transaction, error)
	SaveTransactions(ctx context.Context, transactions []core.Transaction) error
	LoadBudgets(ctx context.Context) (core.Budgets, error)
	SaveBudgets(ctx context.Context, budgets core.Budgets) error
	Close() error
}

// Type selects the persistence backend.
type Type string

const (
	FlatFile Type = "csv"
	SQLite   Type = "sqlite"
	Memory   Type = "memory"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case FlatFile, SQLite, Memory:
		return true
	default:
		return false
	}
}

// Config holds configuration for backend creation.
type Config struct {
	Type Type

	// Flat-file specific
	TransactionsPath string
	BudgetsPath      string

	// SQLite specific
	SQLiteDBPath string
}
