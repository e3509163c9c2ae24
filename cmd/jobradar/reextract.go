package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobradar/internal/db"
	"github.com/jonathan/jobradar/internal/pipeline"
)

var (
	reextractConcurrency int
	reextractMissingOnly bool
)

var reextractCmd = &cobra.Command{
	Use:   "reextract",
	Short: "Re-extract stored jobs in batch",
	Long:  "Run the extraction engine over stored jobs, replacing each job's result atomically. Use --missing-only to fill in jobs that were captured but never extracted.",
	RunE:  runReextract,
}

func init() {
	reextractCmd.Flags().IntVar(&reextractConcurrency, "concurrency", 0, "Concurrent extraction bound (default 4)")
	reextractCmd.Flags().BoolVar(&reextractMissingOnly, "missing-only", false, "Only extract jobs with no stored result")
	reextractCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.AddCommand(reextractCmd)
}

func runReextract(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	concurrency := reextractConcurrency
	if concurrency == 0 {
		concurrency = cfg.Concurrency
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	engine, cleanup := buildEngine(ctx, cfg, false)
	defer cleanup()

	runner := pipeline.NewRunner(database, engine, concurrency)

	var summary *pipeline.Summary
	if reextractMissingOnly {
		summary, err = runner.RunMissing(ctx, 0)
	} else {
		summary, err = runner.RunAll(ctx)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Re-extracted %d jobs, %d failed\n", summary.Processed, summary.Failed)
	for _, jobErr := range summary.Errors {
		fmt.Fprintf(cmd.OutOrStdout(), "  %v\n", jobErr)
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d jobs failed", summary.Failed)
	}

	return nil
}
