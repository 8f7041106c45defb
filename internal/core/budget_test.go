package core

import (
	"testing"
	"time"
)

func TestEvaluateBudgets(t *testing.T) {
	summary := Summary{
		ByCategory: []CategoryAmount{
			{Category: CategoryFood, Amount: Money{Cents: 5000}},
			{Category: CategoryHousing, Amount: Money{Cents: 90000}},
			{Category: CategoryShopping, Amount: Money{Cents: 2000}},
			{Category: CategoryOther, Amount: Money{Cents: 700}},
		},
		Total: Money{Cents: 97700},
	}
	budgets := Budgets{
		CategoryFood:     {Cents: 5000},  // spent == budget
		CategoryHousing:  {Cents: 80000}, // exceeded
		CategoryShopping: {Cents: 0},     // zero means unset
		// Other absent
	}

	lines := EvaluateBudgets(summary, budgets)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}

	// Equality is not over-budget; remaining is exactly zero.
	if lines[0].Status != StatusUnderBudget || lines[0].Remaining.Cents != 0 {
		t.Fatalf("Food: %+v", lines[0])
	}
	// Over budget reports zero remaining, never negative headroom.
	if lines[1].Status != StatusOverBudget || lines[1].Remaining.Cents != 0 {
		t.Fatalf("Housing: %+v", lines[1])
	}
	// Zero budget and absent budget both classify as no-budget.
	if lines[2].Status != StatusNoBudget {
		t.Fatalf("Shopping: %+v", lines[2])
	}
	if lines[3].Status != StatusNoBudget {
		t.Fatalf("Other: %+v", lines[3])
	}
}

func TestCheckBudgetFiresOverBudget(t *testing.T) {
	now := time.Date(2024, time.June, 14, 8, 0, 0, 0, time.UTC)
	history := []Transaction{
		{Date: NewDate(now), Description: "Coffee", Category: CategoryFood, Amount: Money{Cents: 450}},
	}
	budgets := Budgets{CategoryFood: {Cents: 400}}

	alert, fired := CheckBudget(history, budgets, CategoryFood, now)
	if !fired {
		t.Fatal("expected alert to fire")
	}
	if alert.Spent.Cents != 450 || alert.Budget.Cents != 400 {
		t.Fatalf("alert = %+v", alert)
	}
	if alert.Month != time.June || alert.Year != 2024 {
		t.Fatalf("alert window = %v %d", alert.Month, alert.Year)
	}
}

func TestCheckBudgetCurrentMonthOnly(t *testing.T) {
	now := time.Date(2024, time.June, 14, 8, 0, 0, 0, time.UTC)
	// Heavy spend in May must not count against June.
	history := []Transaction{
		{Date: NewDate(now.AddDate(0, -1, 0)), Description: "feast", Category: CategoryFood, Amount: Money{Cents: 99900}},
		{Date: NewDate(now), Description: "snack", Category: CategoryFood, Amount: Money{Cents: 100}},
	}
	budgets := Budgets{CategoryFood: {Cents: 5000}}

	if _, fired := CheckBudget(history, budgets, CategoryFood, now); fired {
		t.Fatal("alert must only consider the current calendar month")
	}
}

func TestCheckBudgetBoundaries(t *testing.T) {
	now := time.Date(2024, time.June, 14, 8, 0, 0, 0, time.UTC)
	history := []Transaction{
		{Date: NewDate(now), Description: "exact", Category: CategoryFood, Amount: Money{Cents: 400}},
	}

	// Spend equal to budget does not alert.
	if _, fired := CheckBudget(history, Budgets{CategoryFood: {Cents: 400}}, CategoryFood, now); fired {
		t.Fatal("equality must not alert")
	}
	// Zero or absent budget never alerts, regardless of spend.
	if _, fired := CheckBudget(history, Budgets{CategoryFood: {Cents: 0}}, CategoryFood, now); fired {
		t.Fatal("zero budget must not alert")
	}
	if _, fired := CheckBudget(history, Budgets{}, CategoryFood, now); fired {
		t.Fatal("absent budget must not alert")
	}
}

func TestBudgetsTotal(t *testing.T) {
	b := Budgets{
		CategoryFood:    {Cents: 40000},
		CategoryHousing: {Cents: 90000},
	}
	if got := b.Total().Cents; got != 130000 {
		t.Fatalf("Total = %d", got)
	}
}
