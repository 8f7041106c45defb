package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Config is the environment-driven application configuration. Everything has
// a local default; the tool runs with no configuration at all.
type Config struct {
	// Data store
	Backend          string // csv | sqlite | memory
	DataDir          string
	TransactionsFile string
	BudgetsFile      string
	SQLiteDBPath     string

	// Artifacts
	ReportDir string
	ChartDir  string

	// Optional AMQP alert publishing
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

func Load() *Config {
	dataDir := getEnv("EXPENSES_DATA_DIR", "data")
	cfg := &Config{
		Backend:          getEnv("EXPENSES_BACKEND", "csv"),
		DataDir:          dataDir,
		TransactionsFile: getEnv("EXPENSES_TRANSACTIONS_FILE", filepath.Join(dataDir, "expenses.csv")),
		BudgetsFile:      getEnv("EXPENSES_BUDGETS_FILE", filepath.Join(dataDir, "budgets.json")),
		SQLiteDBPath:     getEnv("EXPENSES_SQLITE_DB_PATH", filepath.Join(dataDir, "expenses.db")),

		ReportDir: getEnv("EXPENSES_REPORT_DIR", "."),
		ChartDir:  getEnv("EXPENSES_CHART_DIR", "."),

		AMQPURL:      getEnv("EXPENSES_AMQP_URL", ""),
		AMQPExchange: getEnv("EXPENSES_AMQP_EXCHANGE", "expenses"),
		AMQPQueue:    getEnv("EXPENSES_AMQP_QUEUE", "budget_alerts"),
	}
	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"csv", "sqlite", "memory"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.Backend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, validBackends))
	}

	if c.Backend == "csv" {
		if c.TransactionsFile == "" {
			errors = append(errors, "transactions file path cannot be empty when using the csv backend")
		}
		if c.BudgetsFile == "" {
			errors = append(errors, "budgets file path cannot be empty when using the csv backend")
		}
	}

	if c.Backend == "sqlite" && c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty when using the sqlite backend")
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
