package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobradar/internal/config"
	"github.com/jonathan/jobradar/internal/extraction"
	"github.com/jonathan/jobradar/internal/ingestion"
	"github.com/jonathan/jobradar/internal/llm"
	"github.com/jonathan/jobradar/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract signals from a job description",
	Long:  "Extract keywords, requirement classification, years/degree/certifications, and role signals from a job description file (or stdin). With an API key the AI path runs first; rule-based extraction is the fallback.",
	RunE:  runExtract,
}

var (
	extractFile    string
	extractTitle   string
	extractJSON    bool
	extractVerbose bool
	extractNoAI    bool
	configPath     string
)

func init() {
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to job description file (reads stdin when omitted)")
	extractCmd.Flags().StringVarP(&extractTitle, "title", "t", "", "Job title, improves role inference")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Emit the result as JSON")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a formatted result summary")
	extractCmd.Flags().BoolVar(&extractNoAI, "no-ai", false, "Skip the AI path even if an API key is configured")
	extractCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(extractCmd)
}

// loadCLIConfig merges the optional config file with environment defaults.
func loadCLIConfig() (config.Config, error) {
	cfg := config.Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildEngine wires the extraction engine, with a Gemini client when a key is
// available and AI has not been disabled.
func buildEngine(ctx context.Context, cfg config.Config, noAI bool) (*extraction.Engine, func()) {
	opts := extraction.Options{}
	if cfg.AITimeoutSeconds > 0 {
		opts.AITimeout = time.Duration(cfg.AITimeoutSeconds) * time.Second
	}

	cleanup := func() {}
	if !noAI && cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			log.Printf("AI client unavailable, using rule-based extraction: %v", err)
		} else {
			opts.Client = client
			cleanup = func() { _ = client.Close() }
		}
	}

	return extraction.New(opts), cleanup
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	var text string
	switch {
	case extractFile != "":
		text, err = ingestion.FromFile(extractFile)
		if err != nil {
			return err
		}
	case cfg.Job != "":
		text, err = ingestion.FromFile(cfg.Job)
		if err != nil {
			return err
		}
	default:
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = ingestion.Prepare(string(raw))
	}

	ctx := context.Background()
	engine, cleanup := buildEngine(ctx, cfg, extractNoAI)
	defer cleanup()

	result := engine.Extract(ctx, extractTitle, text)

	if extractJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintResult(result)
	if extractVerbose {
		printer.PrintSummary(result)
	}

	return nil
}
