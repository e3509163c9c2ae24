// Package main provides the jobradar CLI: extract signals from job
// descriptions, serve the capture API, and re-extract stored jobs.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobradar",
	Short: "Job-posting signal extraction",
	Long:  "jobradar extracts skill keywords, must-have/nice-to-have requirements, and role signals from job descriptions, with an optional AI-assisted path that always falls back to deterministic rules.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
