// Package report assembles persisted snapshots of the transaction history:
// the per-month report artifact and the full JSON export.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"expenses/internal/core"
)

// ErrNoData signals an empty window: nothing to report or export, no file
// written. It is informational, not fatal.
var ErrNoData = errors.New("no data")

// Report is the persisted snapshot of one month.
type Report struct {
	Month        string             `json:"month"` // calendar month name
	Year         int                `json:"year"`
	Total        float64            `json:"total"`
	ByCategory   map[string]float64 `json:"by_category"`
	Transactions []Entry            `json:"transactions"`
}

// Entry is one itemized transaction inside a report.
type Entry struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
}

// ExportEntry is one transaction in the full export snapshot; the date keeps
// minute precision so the export round-trips the store.
type ExportEntry struct {
	Date        string  `json:"date"` // YYYY-MM-DD HH:MM
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
}

// Builder writes report and export artifacts into a target directory.
type Builder struct {
	dir string
}

func NewBuilder(dir string) (*Builder, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create report directory: %w", err)
	}
	return &Builder{dir: dir}, nil
}

// Filename is the deterministic artifact name for a year and month. A new
// report for the same month overwrites the old one; reports for other months
// are untouched.
func Filename(year int, month time.Month) string {
	return fmt.Sprintf("expense_report_%d_%d.json", year, int(month))
}

// Monthly filters transactions to exactly month+year, builds the report and
// persists it. Returns ErrNoData and writes nothing when the month is empty.
func (b *Builder) Monthly(ctx context.Context, transactions []core.Transaction, month time.Month, year int) (Report, string, error) {
	matching := core.FilterTransactions(transactions, core.Filter{Month: int(month), Year: year})
	if len(matching) == 0 {
		return Report{}, "", fmt.Errorf("%w for %s %d", ErrNoData, month, year)
	}

	summary := core.Summarize(matching, core.Filter{})
	r := Report{
		Month:        month.String(),
		Year:         year,
		Total:        summary.Total.Dollars(),
		ByCategory:   make(map[string]float64, len(summary.ByCategory)),
		Transactions: make([]Entry, 0, len(matching)),
	}
	for _, ca := range summary.ByCategory {
		r.ByCategory[ca.Category.String()] = ca.Amount.Dollars()
	}
	for _, t := range matching {
		r.Transactions = append(r.Transactions, Entry{
			Date:        t.Date.Time.Format(core.DateLayout),
			Description: t.Description,
			Category:    t.Category.String(),
			Amount:      t.Amount.Dollars(),
		})
	}

	path := filepath.Join(b.dir, Filename(year, month))
	if err := writeJSON(path, r); err != nil {
		return Report{}, "", fmt.Errorf("write monthly report: %w", err)
	}
	slog.InfoContext(ctx, "Monthly report saved",
		"path", path,
		"month", r.Month,
		"year", r.Year,
		"transactions", len(r.Transactions))
	return r, path, nil
}

// Export writes the whole transaction history as a JSON snapshot named by
// the caller. Returns ErrNoData and writes nothing when the store is empty.
func (b *Builder) Export(ctx context.Context, transactions []core.Transaction, filename string) (string, error) {
	if len(transactions) == 0 {
		return "", fmt.Errorf("%w: nothing to export", ErrNoData)
	}
	if filename == "" {
		filename = "expenses.json"
	}

	entries := make([]ExportEntry, 0, len(transactions))
	for _, t := range transactions {
		entries = append(entries, ExportEntry{
			Date:        t.Date.Format(),
			Description: t.Description,
			Category:    t.Category.String(),
			Amount:      t.Amount.Dollars(),
		})
	}

	path := filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(b.dir, filename)
	}
	if err := writeJSON(path, entries); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	slog.InfoContext(ctx, "Export saved", "path", path, "transactions", len(entries))
	return path, nil
}

// writeJSON writes indented JSON through a temp file and rename.
func writeJSON(path string, v any) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		tmp.Close()
		return fmt.Errorf("encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
