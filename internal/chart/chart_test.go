package chart

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"expenses/internal/core"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func testSummary() core.Summary {
	return core.Summary{
		ByCategory: []core.CategoryAmount{
			{Category: core.CategoryFood, Amount: core.Money{Cents: 12000}},
			{Category: core.CategoryHousing, Amount: core.Money{Cents: 90000}},
		},
		Total: core.Money{Cents: 102000},
	}
}

func TestAnalysisWritesPNG(t *testing.T) {
	r, err := NewRenderer(t.TempDir())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	budgets := core.Budgets{core.CategoryFood: {Cents: 10000}}

	path, err := r.Analysis(testSummary(), budgets, "")
	if err != nil {
		t.Fatalf("Analysis: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatal("artifact is not a PNG")
	}
}

func TestAnalysisEmptySummary(t *testing.T) {
	r, err := NewRenderer(t.TempDir())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if _, err := r.Analysis(core.Summary{}, nil, ""); !errors.Is(err, ErrEmptySeries) {
		t.Fatalf("expected ErrEmptySeries, got %v", err)
	}
}

func TestTrendWritesPNG(t *testing.T) {
	r, err := NewRenderer(t.TempDir())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	points := []core.TrendPoint{
		{Label: "2024-01", Total: core.Money{Cents: 15000}},
		{Label: "2024-02", Total: core.Money{Cents: 3000}},
	}
	budgets := core.Budgets{core.CategoryFood: {Cents: 10000}}

	path, err := r.Trend(points, budgets, "trend.png")
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatal("artifact is not a PNG")
	}
}

func TestTrendEmpty(t *testing.T) {
	r, err := NewRenderer(t.TempDir())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if _, err := r.Trend(nil, nil, ""); !errors.Is(err, ErrEmptySeries) {
		t.Fatalf("expected ErrEmptySeries, got %v", err)
	}
}
