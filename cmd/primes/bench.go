package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/mathforge/primes/benchmark"
	"github.com/mathforge/primes/internal/config"
	"github.com/mathforge/primes/internal/database"
	"github.com/mathforge/primes/internal/log"
)

func benchCmd() *cobra.Command {
	var (
		envFile   string
		suitePath string
		dbURL     string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the sieve strategies over a ladder of bounds",
		Long: `Time the sieve strategies over a geometric ladder of upper bounds.

Without --suite the default suite is run. With --db-url (or DB_URL) the
results are persisted so runs on different machines can be compared.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.Context(), envFile, suitePath, dbURL)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&suitePath, "suite", "", "Path to a YAML suite definition")
	cmd.Flags().StringVar(&dbURL, "db-url", "", "Database URL to persist results to")

	return cmd
}

func runBench(ctx context.Context, envFile, suitePath, dbURL string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	logger := log.Configure(cfg)
	slogger := logger.Slog()

	suite := benchmark.DefaultSuite()
	if suitePath != "" {
		suite, err = benchmark.LoadSuite(suitePath)
		if err != nil {
			return err
		}
	}

	slogger.Info("running benchmark suite",
		slog.String("suite", suite.Name),
		slog.Int("bounds", len(suite.Bounds())),
		slog.Int("strategies", len(suite.Strategies)),
	)

	results, err := benchmark.NewRunner(slogger).Run(ctx, suite)
	if err != nil {
		return fmt.Errorf("run suite: %w", err)
	}

	printResults(results)

	if dbURL == "" {
		return nil
	}
	return persistResults(ctx, cfg, dbURL, results, slogger)
}

// printResults writes a plain table of the best time per strategy and
// bound.
func printResults(results []benchmark.Result) {
	best := make(map[string]benchmark.Result, len(results))
	order := make([]string, 0, len(results))

	for _, r := range results {
		key := fmt.Sprintf("%s\x00%d", r.Strategy, r.Upper)
		prev, seen := best[key]
		if !seen {
			order = append(order, key)
		}
		if !seen || r.DurationNS < prev.DurationNS {
			best[key] = r
		}
	}

	fmt.Printf("%-22s %14s %12s %14s\n", "STRATEGY", "UPPER", "PRIMES", "BEST")
	for _, key := range order {
		r := best[key]
		fmt.Printf("%-22s %14d %12d %14s\n", r.Strategy, r.Upper, r.Primes, time.Duration(r.DurationNS))
	}
}

func persistResults(ctx context.Context, cfg config.AppConfig, dbURL string, results []benchmark.Result, logger *slog.Logger) error {
	if err := cfg.EnsureDataDir(); err != nil {
		return err
	}

	db, err := database.NewDatabase(ctx, dbURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("close database", slog.Any("error", err))
		}
	}()

	store, err := benchmark.NewStore(db)
	if err != nil {
		return err
	}
	if err := store.Save(ctx, results); err != nil {
		return err
	}

	logger.Info("persisted benchmark results", slog.Int("count", len(results)))
	return nil
}
