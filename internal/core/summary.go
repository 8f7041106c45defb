package core

import "sort"

// CategoryAmount represents an amount aggregated by category.
type CategoryAmount struct {
	Category Category
	Amount   Money
}

// Summary holds per-category totals and a grand total for one filter window.
// ByCategory is ordered by first appearance among the matching transactions,
// so downstream display follows discovery order.
type Summary struct {
	ByCategory []CategoryAmount
	Total      Money
}

// Amount returns the total for one category and whether it appeared at all.
func (s Summary) Amount(c Category) (Money, bool) {
	for _, ca := range s.ByCategory {
		if ca.Category == c {
			return ca.Amount, true
		}
	}
	return Money{}, false
}

// Filter selects transactions by optional category, month and year.
// Zero values pass everything; set fields must all match (conjunctive).
// Month and year match the transaction timestamp independently: month
// alone matches that month across all years, year alone the whole year.
type Filter struct {
	Category Category
	Month    int // 1-12, 0 = any
	Year     int // 0 = any
}

// Matches reports whether t passes every set field of the filter.
func (f Filter) Matches(t Transaction) bool {
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Month != 0 && t.Date.Month() != f.Month {
		return false
	}
	if f.Year != 0 && t.Date.Year() != f.Year {
		return false
	}
	return true
}

// Summarize reduces the transactions matching f to per-category totals and
// a grand total. An empty match set yields an empty Summary, never an error.
func Summarize(transactions []Transaction, f Filter) Summary {
	var s Summary
	index := make(map[Category]int)
	for _, t := range transactions {
		if !f.Matches(t) {
			continue
		}
		i, seen := index[t.Category]
		if !seen {
			i = len(s.ByCategory)
			index[t.Category] = i
			s.ByCategory = append(s.ByCategory, CategoryAmount{Category: t.Category})
		}
		s.ByCategory[i].Amount = s.ByCategory[i].Amount.Add(t.Amount)
		s.Total = s.Total.Add(t.Amount)
	}
	return s
}

// FilterTransactions returns the transactions matching f in input order.
func FilterTransactions(transactions []Transaction, f Filter) []Transaction {
	var out []Transaction
	for _, t := range transactions {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// TrendPoint is one month of spending across all categories.
type TrendPoint struct {
	Label string // YYYY-MM
	Total Money
}

// SpendingTrend buckets the whole history by calendar year+month, one point
// per month with at least one transaction, in chronological order.
func SpendingTrend(transactions []Transaction) []TrendPoint {
	totals := make(map[string]Money)
	for _, t := range transactions {
		label := t.Date.Time.Format("2006-01")
		totals[label] = totals[label].Add(t.Amount)
	}
	points := make([]TrendPoint, 0, len(totals))
	for label, total := range totals {
		points = append(points, TrendPoint{Label: label, Total: total})
	}
	// YYYY-MM labels sort lexicographically into chronological order.
	sort.Slice(points, func(i, j int) bool { return points[i].Label < points[j].Label })
	return points
}
