package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kridha/fit-engine/internal/config"
	"github.com/kridha/fit-engine/internal/engine"
	"github.com/kridha/fit-engine/internal/observability"
	"github.com/kridha/fit-engine/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a batch of garments against one body profile",
	Long: `Score every garment in a JSON array file against one body profile.

Garments are scored concurrently; results are printed in input order.`,
	RunE: runBatch,
}

var (
	batchConfigPath   string
	batchBodyPath     string
	batchGarmentsPath string
	batchOutputPath   string
	batchConcurrency  int
	batchVerbose      bool
	batchPersist      bool
	batchDatabaseURL  string
)

func init() {
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	batchCmd.Flags().StringVarP(&batchBodyPath, "body", "b", "", "Path to body profile JSON file")
	batchCmd.Flags().StringVar(&batchGarmentsPath, "garments", "", "Path to JSON array of garment profiles")
	batchCmd.Flags().StringVarP(&batchOutputPath, "out", "o", "", "Path to output JSON file (default: stdout)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Number of garments scored in parallel")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed scoring breakdown per garment")
	batchCmd.Flags().BoolVar(&batchPersist, "persist", false, "Store run and artifacts in the database")
	batchCmd.Flags().StringVar(&batchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if batchConfigPath != "" {
		loaded, err := config.LoadConfig(batchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("body") {
		cfg.Body = batchBodyPath
	}
	if cmd.Flags().Changed("garments") {
		cfg.Batch = batchGarmentsPath
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = batchVerbose
	}
	if cmd.Flags().Changed("persist") {
		cfg.Persist = batchPersist
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = batchDatabaseURL
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.Body == "" {
		return fmt.Errorf("--body is required (via flag or config)")
	}
	if cfg.Batch == "" {
		return fmt.Errorf("--garments is required (via flag or config)")
	}
	if cfg.Persist && cfg.DatabaseURL == "" {
		return fmt.Errorf("--persist requires DATABASE_URL environment variable or --db-url flag")
	}
	if batchConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1")
	}

	body, err := loadBodyProfile(cfg.Body)
	if err != nil {
		return err
	}
	garments, err := loadGarmentBatch(cfg.Batch)
	if err != nil {
		return err
	}

	results := make([]*types.ScoreResult, len(garments))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(batchConcurrency)
	for i := range garments {
		g.Go(func() error {
			results[i] = engine.ScoreGarment(garments[i], body)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if cfg.Persist {
		runID, err := persistScoreRun(context.Background(), cfg, body, garments, results)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stderr, "Persisted run: %s\n", runID)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		for i, result := range results {
			_, _ = fmt.Fprintf(os.Stderr, "=== Garment %d of %d ===\n", i+1, len(results))
			printer.PrintResult(result)
		}
	}

	return writeResultJSON(batchOutputPath, results)
}

// loadGarmentBatch reads a JSON array of garment profiles, each unmarshalled
// on top of the standard defaults.
func loadGarmentBatch(path string) ([]*types.GarmentProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read garment batch: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse garment batch (expected JSON array): %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("garment batch is empty")
	}

	garments := make([]*types.GarmentProfile, len(raw))
	for i, msg := range raw {
		garment := types.NewGarmentProfile()
		if err := json.Unmarshal(msg, &garment); err != nil {
			return nil, fmt.Errorf("failed to parse garment %d: %w", i, err)
		}
		garments[i] = &garment
	}
	return garments, nil
}
