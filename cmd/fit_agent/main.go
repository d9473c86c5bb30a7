// Package main provides the entry point for the fit-engine CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fit_agent",
	Short: "Garment-body fit scoring engine",
	Long:  "Fit Engine scores garments against body profiles using deterministic styling principles, producing a 0-10 verdict with per-principle reasoning, goal verdicts, and fix suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
