package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"expenses/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteBackend keeps the store in a local SQLite database instead of flat
// files. Save semantics match the flat-file backend: every save replaces the
// whole collection inside one transaction.
type SQLiteBackend struct {
	db *sql.DB
}

func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

func (b *SQLiteBackend) LoadTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := b.db.QueryContext(ctx,
		`SELECT occurred_at, description, category, amount_cents FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			occurredAt  string
			description string
			category    string
			amountCents int64
		)
		if err := rows.Scan(&occurredAt, &description, &category, &amountCents); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		date, err := core.ParseDate(occurredAt)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", occurredAt, err)
		}
		out = append(out, core.Transaction{
			Date:        date,
			Description: description,
			Category:    core.ParseCategory(category),
			Amount:      core.Money{Cents: amountCents},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

func (b *SQLiteBackend) SaveTransactions(ctx context.Context, transactions []core.Transaction) error {
	err := b.replaceAll(ctx, "transactions", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO transactions (occurred_at, description, category, amount_cents) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, t := range transactions {
			if _, err := stmt.ExecContext(ctx, t.Date.Format(), t.Description, t.Category.String(), t.Amount.Cents); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save transactions: %w", err)
	}
	slog.DebugContext(ctx, "Transactions saved to SQLite", "count", len(transactions))
	return nil
}

func (b *SQLiteBackend) LoadBudgets(ctx context.Context) (core.Budgets, error) {
	rows, err := b.db.QueryContext(ctx, `SELECT category, limit_cents FROM budgets`)
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	defer rows.Close()

	budgets := core.Budgets{}
	for rows.Next() {
		var (
			category   string
			limitCents int64
		)
		if err := rows.Scan(&category, &limitCents); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets[core.ParseCategory(category)] = core.Money{Cents: limitCents}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budgets: %w", err)
	}
	return budgets, nil
}

func (b *SQLiteBackend) SaveBudgets(ctx context.Context, budgets core.Budgets) error {
	err := b.replaceAll(ctx, "budgets", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO budgets (category, limit_cents) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for category, limit := range budgets {
			if _, err := stmt.ExecContext(ctx, category.String(), limit.Cents); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save budgets: %w", err)
	}
	slog.DebugContext(ctx, "Budgets saved to SQLite", "count", len(budgets))
	return nil
}

// replaceAll clears a table and refills it inside one database transaction.
func (b *SQLiteBackend) replaceAll(ctx context.Context, table string, fill func(*sql.Tx) error) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	if err := fill(tx); err != nil {
		return fmt.Errorf("fill %s: %w", table, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
