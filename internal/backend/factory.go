package backend

import (
	"fmt"
	"log/slog"

	"expenses/internal/storage"
)

// New creates the backend selected by config. Flat files are the default
// store of this tool; SQLite is an alternative for people who prefer a
// single database file, and memory exists for tests.
func New(config Config, logger *slog.Logger) (Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLite:
		b, err := storage.NewSQLiteBackend(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
		return b, nil
	case Memory:
		logger.Info("Initialized memory backend")
		return storage.NewMemoryBackend(), nil
	default:
		b, err := storage.NewFlatFileBackend(config.TransactionsPath, config.BudgetsPath)
		if err != nil {
			return nil, fmt.Errorf("initialize flat-file backend: %w", err)
		}
		logger.Info("Initialized flat-file backend",
			"transactions", config.TransactionsPath,
			"budgets", config.BudgetsPath)
		return b, nil
	}
}
