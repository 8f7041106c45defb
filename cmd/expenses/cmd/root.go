// Package cmd provides the CLI commands for the expenses tracker.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"expenses/internal/alert"
	"expenses/internal/backend"
	"expenses/internal/chart"
	"expenses/internal/config"
	applog "expenses/internal/log"
	"expenses/internal/report"
	"expenses/internal/services"
	"expenses/internal/store"
)

var (
	envFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Track expenses, budgets and monthly reports",
	Long: `expenses is a personal expense tracker. It records categorized
transactions in flat files, enforces per-category monthly budgets and
produces summaries, monthly report artifacts and chart images.

Example:
  expenses add "Coffee" Food 4.50
  expenses summary --month 6 --year 2024
  expenses budget set Food=400 Housing=1200
  expenses report --month 6 --year 2024`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if envFile != "" {
			if err := godotenv.Load(envFile); err != nil {
				slog.Warn("Could not load env file", "path", envFile, "error", err)
			}
		} else {
			// Default .env is optional
			_ = godotenv.Load()
		}

		logLevel := slog.LevelWarn
		if debug {
			logLevel = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load (default .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(budgetCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(clearCmd)
}

// newTracker wires the service stack from the environment configuration.
// The caller must Close the returned service.
func newTracker(ctx context.Context) (*services.TrackerService, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := applog.New(applog.Config{
		Handler:   slog.Default().Handler(),
		Component: applog.ComponentCLI,
	})

	b, err := backend.New(backend.Config{
		Type:             backend.Type(cfg.Backend),
		TransactionsPath: cfg.TransactionsFile,
		BudgetsPath:      cfg.BudgetsFile,
		SQLiteDBPath:     cfg.SQLiteDBPath,
	}, logger.Logger)
	if err != nil {
		return nil, fmt.Errorf("initialize backend: %w", err)
	}

	st, err := store.Open(ctx, b)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	reports, err := report.NewBuilder(cfg.ReportDir)
	if err != nil {
		st.Close()
		return nil, err
	}
	charts, err := chart.NewRenderer(cfg.ChartDir)
	if err != nil {
		st.Close()
		return nil, err
	}

	// Alerts always reach the console; AMQP publishing is opt-in.
	notifiers := alert.Multi{alert.NewConsoleNotifier(os.Stdout)}
	if cfg.AMQPURL != "" {
		amqpNotifier, err := alert.NewAMQPNotifier(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP notifier, continuing with console alerts only", applog.FieldError, err)
		} else {
			notifiers = append(notifiers, amqpNotifier)
		}
	}

	return services.NewTrackerService(st, reports, charts, notifiers, logger), nil
}
