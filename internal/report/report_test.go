package report

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"expenses/internal/core"
)

func tx(year int, month time.Month, day int, desc string, cat core.Category, cents int64) core.Transaction {
	return core.Transaction{
		Date:        core.NewDate(time.Date(year, month, day, 10, 30, 0, 0, time.UTC)),
		Description: desc,
		Category:    cat,
		Amount:      core.Money{Cents: cents},
	}
}

func TestMonthlyReport(t *testing.T) {
	dir := t.TempDir()
	b, err := NewBuilder(dir)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}

	history := []core.Transaction{
		tx(2024, time.January, 5, "groceries", core.CategoryFood, 10000),
		tx(2024, time.January, 20, "misc", core.CategoryOther, 5000),
		tx(2024, time.February, 2, "groceries", core.CategoryFood, 3000),
	}

	r, path, err := b.Monthly(context.Background(), history, time.January, 2024)
	if err != nil {
		t.Fatalf("Monthly: %v", err)
	}
	if filepath.Base(path) != "expense_report_2024_1.json" {
		t.Fatalf("artifact name = %q", filepath.Base(path))
	}
	if r.Month != "January" || r.Year != 2024 {
		t.Fatalf("header = %s %d", r.Month, r.Year)
	}
	if r.Total != 150.0 {
		t.Fatalf("total = %v", r.Total)
	}
	if r.ByCategory["Food"] != 100.0 || r.ByCategory["Other"] != 50.0 {
		t.Fatalf("by_category = %v", r.ByCategory)
	}
	if len(r.Transactions) != 2 {
		t.Fatalf("itemized %d transactions, want 2", len(r.Transactions))
	}
	if r.Transactions[0].Date != "2024-01-05" {
		t.Fatalf("entry date = %q", r.Transactions[0].Date)
	}

	// The artifact on disk decodes back to the same report.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var onDisk Report
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if onDisk.Total != r.Total || onDisk.Month != r.Month {
		t.Fatalf("on-disk report differs: %+v", onDisk)
	}
}

func TestMonthlyReportNoData(t *testing.T) {
	dir := t.TempDir()
	b, err := NewBuilder(dir)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	history := []core.Transaction{
		tx(2024, time.January, 5, "groceries", core.CategoryFood, 10000),
	}

	// A prior report for a different month must survive a no-data call.
	if _, _, err := b.Monthly(context.Background(), history, time.January, 2024); err != nil {
		t.Fatalf("Monthly: %v", err)
	}

	_, _, err = b.Monthly(context.Background(), history, time.March, 2024)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, Filename(2024, time.March))); !os.IsNotExist(err) {
		t.Fatal("no artifact may be written for an empty month")
	}
	if _, err := os.Stat(filepath.Join(dir, Filename(2024, time.January))); err != nil {
		t.Fatalf("prior report touched: %v", err)
	}
}

func TestMonthlyReportOverwritesSameMonth(t *testing.T) {
	dir := t.TempDir()
	b, err := NewBuilder(dir)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}

	first := []core.Transaction{tx(2024, time.January, 5, "groceries", core.CategoryFood, 10000)}
	if _, _, err := b.Monthly(context.Background(), first, time.January, 2024); err != nil {
		t.Fatalf("Monthly: %v", err)
	}

	second := append(first, tx(2024, time.January, 6, "more", core.CategoryFood, 2000))
	if _, _, err := b.Monthly(context.Background(), second, time.January, 2024); err != nil {
		t.Fatalf("Monthly: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, Filename(2024, time.January)))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if r.Total != 120.0 {
		t.Fatalf("overwrite failed, total = %v", r.Total)
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	b, err := NewBuilder(dir)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}

	history := []core.Transaction{
		tx(2024, time.January, 5, "groceries", core.CategoryFood, 10000),
	}
	path, err := b.Export(context.Background(), history, "snapshot.json")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var entries []ExportEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("exported %d entries, want 1", len(entries))
	}
	if entries[0].Date != "2024-01-05 10:30" {
		t.Fatalf("export date = %q, want minute precision", entries[0].Date)
	}
}

func TestExportEmpty(t *testing.T) {
	b, err := NewBuilder(t.TempDir())
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	if _, err := b.Export(context.Background(), nil, "snapshot.json"); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}
