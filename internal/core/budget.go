package core

import "time"

// Budgets maps a category to its monthly spending ceiling. A zero or absent
// entry means "no budget configured", not "zero spend allowed".
type Budgets map[Category]Money

// Total sums every configured ceiling, used as the flat budget line on
// trend charts.
func (b Budgets) Total() Money {
	var total Money
	for _, limit := range b {
		total = total.Add(limit)
	}
	return total
}

// Clone returns an independent copy of the mapping.
func (b Budgets) Clone() Budgets {
	out := make(Budgets, len(b))
	for c, m := range b {
		out[c] = m
	}
	return out
}

// BudgetStatus classifies one category against its configured ceiling.
type BudgetStatus string

const (
	StatusNoBudget    BudgetStatus = "no-budget"
	StatusUnderBudget BudgetStatus = "under-budget"
	StatusOverBudget  BudgetStatus = "over-budget"
)

// BudgetLine is the evaluation result for one category. Remaining is the
// headroom left under the ceiling; it is zero when over budget (exceeded is
// signalled by Status, never by a negative amount) and meaningless when no
// budget is configured.
type BudgetLine struct {
	Category  Category
	Spent     Money
	Budget    Money
	Remaining Money
	Status    BudgetStatus
}

// EvaluateBudgets cross-references aggregated per-category spend against the
// configured budgets, in the summary's discovery order. Spend exactly equal
// to the ceiling is under-budget with zero remaining.
func EvaluateBudgets(summary Summary, budgets Budgets) []BudgetLine {
	lines := make([]BudgetLine, 0, len(summary.ByCategory))
	for _, ca := range summary.ByCategory {
		line := BudgetLine{
			Category: ca.Category,
			Spent:    ca.Amount,
			Budget:   budgets[ca.Category],
		}
		switch {
		case line.Budget.Cents <= 0:
			line.Status = StatusNoBudget
		case line.Spent.Cents > line.Budget.Cents:
			line.Status = StatusOverBudget
		default:
			line.Status = StatusUnderBudget
			line.Remaining = Money{Cents: line.Budget.Cents - line.Spent.Cents}
		}
		lines = append(lines, line)
	}
	return lines
}

// BudgetAlert signals that a category has exceeded its ceiling for the
// current calendar month.
type BudgetAlert struct {
	Category Category
	Budget   Money
	Spent    Money
	Month    time.Month
	Year     int
}

// CheckBudget recomputes the category's total for the calendar month of now
// from the full transaction history and reports an alert iff that total
// strictly exceeds a configured (non-zero) budget. The recompute ignores any
// caller-side filter state: the alert always reflects "now".
func CheckBudget(transactions []Transaction, budgets Budgets, category Category, now time.Time) (BudgetAlert, bool) {
	budget := budgets[category]
	if budget.Cents <= 0 {
		return BudgetAlert{}, false
	}
	spent := Summarize(transactions, Filter{
		Category: category,
		Month:    int(now.Month()),
		Year:     now.Year(),
	}).Total
	if spent.Cents <= budget.Cents {
		return BudgetAlert{}, false
	}
	return BudgetAlert{
		Category: category,
		Budget:   budget,
		Spent:    spent,
		Month:    now.Month(),
		Year:     now.Year(),
	}, true
}
