package storage

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"expenses/internal/core"
)

// Column order of the persisted transaction file.
var csvHeader = []string{"date", "description", "category", "amount"}

// FlatFileBackend persists transactions to a CSV file and budgets to an
// indented JSON file. Every save rewrites the whole file through a temp
// file and rename, so a crash mid-write never corrupts the store.
type FlatFileBackend struct {
	transactionsPath string
	budgetsPath      string
}

func NewFlatFileBackend(transactionsPath, budgetsPath string) (*FlatFileBackend, error) {
	for _, p := range []string{transactionsPath, budgetsPath} {
		dir := filepath.Dir(p)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create data directory: %w", err)
			}
		}
	}
	return &FlatFileBackend{
		transactionsPath: transactionsPath,
		budgetsPath:      budgetsPath,
	}, nil
}

// LoadTransactions reads the persisted CSV. A missing file is an empty
// store, not an error.
func (b *FlatFileBackend) LoadTransactions(ctx context.Context) ([]core.Transaction, error) {
	f, err := os.Open(b.transactionsPath)
	if os.IsNotExist(err) {
		slog.DebugContext(ctx, "No transaction file yet, starting empty", "path", b.transactionsPath)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open transaction file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read transaction file: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// First row is the header.
	var out []core.Transaction
	for i, rec := range records[1:] {
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("transaction row %d: expected %d columns, got %d", i+1, len(csvHeader), len(rec))
		}
		date, err := core.ParseDate(rec[0])
		if err != nil {
			return nil, fmt.Errorf("transaction row %d: parse date %q: %w", i+1, rec[0], err)
		}
		amount, err := core.ParseAmount(rec[3])
		if err != nil {
			return nil, fmt.Errorf("transaction row %d: parse amount %q: %w", i+1, rec[3], err)
		}
		out = append(out, core.Transaction{
			Date:        date,
			Description: rec[1],
			Category:    core.ParseCategory(rec[2]),
			Amount:      amount,
		})
	}
	return out, nil
}

// SaveTransactions rewrites the full CSV, header first.
func (b *FlatFileBackend) SaveTransactions(ctx context.Context, transactions []core.Transaction) error {
	err := writeAtomic(b.transactionsPath, func(f *os.File) error {
		w := csv.NewWriter(f)
		if err := w.Write(csvHeader); err != nil {
			return err
		}
		for _, t := range transactions {
			row := []string{t.Date.Format(), t.Description, t.Category.String(), t.Amount.String()}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
	if err != nil {
		return fmt.Errorf("save transactions: %w", err)
	}
	slog.DebugContext(ctx, "Transactions saved", "path", b.transactionsPath, "count", len(transactions))
	return nil
}

// LoadBudgets reads the budget JSON. A missing file means no budgets set.
func (b *FlatFileBackend) LoadBudgets(ctx context.Context) (core.Budgets, error) {
	data, err := os.ReadFile(b.budgetsPath)
	if os.IsNotExist(err) {
		slog.DebugContext(ctx, "No budget file yet, starting empty", "path", b.budgetsPath)
		return core.Budgets{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read budget file: %w", err)
	}

	raw := map[string]float64{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse budget file: %w", err)
	}
	budgets := make(core.Budgets, len(raw))
	for name, limit := range raw {
		budgets[core.ParseCategory(name)] = core.FromDollars(limit)
	}
	return budgets, nil
}

// SaveBudgets rewrites the full budget document, human-readably indented.
func (b *FlatFileBackend) SaveBudgets(ctx context.Context, budgets core.Budgets) error {
	raw := make(map[string]float64, len(budgets))
	for category, limit := range budgets {
		raw[category.String()] = limit.Dollars()
	}
	err := writeAtomic(b.budgetsPath, func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(raw)
	})
	if err != nil {
		return fmt.Errorf("save budgets: %w", err)
	}
	slog.DebugContext(ctx, "Budgets saved", "path", b.budgetsPath, "count", len(budgets))
	return nil
}

func (b *FlatFileBackend) Close() error { return nil }

// writeAtomic writes through a temp file in the target directory and renames
// it into place.
func writeAtomic(path string, write func(*os.File) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
