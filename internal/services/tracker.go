// Package services orchestrates the store, the budget alerting path and the
// artifact builders behind one façade the CLI talks to.
package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"expenses/internal/alert"
	"expenses/internal/chart"
	"expenses/internal/core"
	applog "expenses/internal/log"
	"expenses/internal/report"
	"expenses/internal/store"
)

// TrackerService is the single entry point for expense operations.
type TrackerService struct {
	store    *store.Store
	reports  *report.Builder
	charts   *chart.Renderer
	notifier alert.Notifier
	logger   *applog.Logger

	now func() time.Time
}

func NewTrackerService(st *store.Store, reports *report.Builder, charts *chart.Renderer, notifier alert.Notifier, logger *applog.Logger) *TrackerService {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &TrackerService{
		store:    st,
		reports:  reports,
		charts:   charts,
		notifier: notifier,
		logger:   logger.WithComponent(applog.ComponentTracker),
		now:      time.Now,
	}
}

// AddTransaction validates and records a new transaction, persists the store
// and immediately re-checks the category's budget for the current calendar
// month. The transaction timestamp is assigned here, at minute precision.
// An unrecognized category is silently stored as Other; an unparseable or
// negative amount rejects the whole operation with no mutation.
func (s *TrackerService) AddTransaction(ctx context.Context, description, category, amount string) (core.Transaction, error) {
	m, err := core.ParseAmount(amount)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}

	t := core.Transaction{
		Date:        core.NewDate(s.now()),
		Description: description,
		Category:    core.ParseCategory(category),
		Amount:      m,
	}
	if err := s.store.Add(ctx, t); err != nil {
		return core.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}

	s.logger.InfoContext(ctx, "Transaction added",
		applog.FieldDescription, t.Description,
		applog.FieldCategory, t.Category.String(),
		applog.FieldAmountCents, t.Amount.Cents)

	s.checkAlert(ctx, t.Category)
	return t, nil
}

// checkAlert runs the always-use-now budget check and notifies on an
// over-budget condition. Notification failures are logged, never surfaced:
// the transaction is already recorded.
func (s *TrackerService) checkAlert(ctx context.Context, category core.Category) {
	a, fired := core.CheckBudget(s.store.Transactions(), s.store.Budgets(), category, s.now())
	if !fired {
		return
	}
	s.logger.WarnContext(ctx, "Budget exceeded",
		applog.FieldCategory, a.Category.String(),
		applog.FieldBudgetCents, a.Budget.Cents,
		applog.FieldSpentCents, a.Spent.Cents,
		applog.FieldMonth, int(a.Month),
		applog.FieldYear, a.Year)
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, a); err != nil {
		s.logger.ErrorContext(ctx, "Failed to deliver budget alert",
			applog.FieldCategory, a.Category.String(),
			applog.FieldError, err)
	}
}

// List returns the transactions matching the filter, in insertion order.
func (s *TrackerService) List(_ context.Context, f core.Filter) []core.Transaction {
	return core.FilterTransactions(s.store.Transactions(), f)
}

// Summary aggregates the filter window into per-category and grand totals.
func (s *TrackerService) Summary(_ context.Context, f core.Filter) core.Summary {
	return core.Summarize(s.store.Transactions(), f)
}

// BudgetLines evaluates the filter window's spend against the configured
// budgets, in the summary's discovery order.
func (s *TrackerService) BudgetLines(ctx context.Context, f core.Filter) []core.BudgetLine {
	return core.EvaluateBudgets(s.Summary(ctx, f), s.store.Budgets())
}

// Budgets returns the configured budget mapping.
func (s *TrackerService) Budgets(_ context.Context) core.Budgets {
	return s.store.Budgets()
}

// SetBudgets replaces the budget mapping wholesale.
func (s *TrackerService) SetBudgets(ctx context.Context, budgets core.Budgets) error {
	if err := s.store.SetBudgets(ctx, budgets); err != nil {
		return fmt.Errorf("set budgets: %w", err)
	}
	s.logger.InfoContext(ctx, "Budgets updated", "count", len(budgets))
	return nil
}

// ClearTransactions deletes the whole transaction history.
func (s *TrackerService) ClearTransactions(ctx context.Context) error {
	if err := s.store.ClearTransactions(ctx); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	s.logger.InfoContext(ctx, "All transactions cleared")
	return nil
}

// ClearBudgets deletes every configured budget.
func (s *TrackerService) ClearBudgets(ctx context.Context) error {
	if err := s.store.ClearBudgets(ctx); err != nil {
		return fmt.Errorf("clear budgets: %w", err)
	}
	s.logger.InfoContext(ctx, "All budgets cleared")
	return nil
}

// MonthlyReport builds and persists the report artifact for month/year,
// defaulting each to the current calendar month and year when zero.
func (s *TrackerService) MonthlyReport(ctx context.Context, month, year int) (report.Report, string, error) {
	now := s.now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return report.Report{}, "", core.ErrInvalidMonth
	}
	return s.reports.Monthly(ctx, s.store.Transactions(), time.Month(month), year)
}

// Export writes the full history snapshot under the given name.
func (s *TrackerService) Export(ctx context.Context, filename string) (string, error) {
	return s.reports.Export(ctx, s.store.Transactions(), filename)
}

// Trend returns the month-bucketed spending series across all history.
func (s *TrackerService) Trend(_ context.Context) []core.TrendPoint {
	return core.SpendingTrend(s.store.Transactions())
}

// RenderAnalysis produces the combined distribution + budget comparison
// image for the filter window.
func (s *TrackerService) RenderAnalysis(ctx context.Context, f core.Filter, filename string) (string, error) {
	path, err := s.charts.Analysis(s.Summary(ctx, f), s.store.Budgets(), filename)
	if err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "Analysis chart saved", applog.FieldPath, path)
	return path, nil
}

// RenderTrend produces the monthly trend image across all history.
func (s *TrackerService) RenderTrend(ctx context.Context, filename string) (string, error) {
	path, err := s.charts.Trend(s.Trend(ctx), s.store.Budgets(), filename)
	if err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "Trend chart saved", applog.FieldPath, path)
	return path, nil
}

// Close releases the store and any closable notifier.
func (s *TrackerService) Close() error {
	var errs []error
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("store: %w", err))
		}
	}
	if c, ok := s.notifier.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("notifier: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close tracker service: %v", errs)
	}
	return nil
}
