package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kridha/fit-engine/internal/config"
	"github.com/kridha/fit-engine/internal/db"
	"github.com/kridha/fit-engine/internal/engine"
	"github.com/kridha/fit-engine/internal/observability"
	"github.com/kridha/fit-engine/internal/schemas"
	"github.com/kridha/fit-engine/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one garment against a body profile",
	Long: `Score a single garment against a body profile and print the result as JSON.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runScore,
}

var (
	scoreConfigPath  string
	scoreBodyPath    string
	scoreGarmentPath string
	scoreOutputPath  string
	scoreVerbose     bool
	scorePersist     bool
	scoreDatabaseURL string
)

func init() {
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	scoreCmd.Flags().StringVarP(&scoreBodyPath, "body", "b", "", "Path to body profile JSON file")
	scoreCmd.Flags().StringVarP(&scoreGarmentPath, "garment", "g", "", "Path to garment profile JSON file")
	scoreCmd.Flags().StringVarP(&scoreOutputPath, "out", "o", "", "Path to output JSON file (default: stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed scoring breakdown")
	scoreCmd.Flags().BoolVar(&scorePersist, "persist", false, "Store run and artifacts in the database")
	scoreCmd.Flags().StringVar(&scoreDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := mergedScoreConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Body == "" {
		return fmt.Errorf("--body is required (via flag or config)")
	}
	if cfg.Garment == "" {
		return fmt.Errorf("--garment is required (via flag or config)")
	}

	body, err := loadBodyProfile(cfg.Body)
	if err != nil {
		return err
	}
	garment, err := loadGarmentProfile(cfg.Garment)
	if err != nil {
		return err
	}

	result := engine.ScoreGarment(garment, body)

	if cfg.Persist {
		runID, err := persistScoreRun(context.Background(), cfg, body, []*types.GarmentProfile{garment}, []*types.ScoreResult{result})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stderr, "Persisted run: %s\n", runID)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintResult(result)
	}

	return writeResultJSON(scoreOutputPath, result)
}

// mergedScoreConfig loads the optional config file and applies CLI overrides.
func mergedScoreConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if scoreConfigPath != "" {
		loaded, err := config.LoadConfig(scoreConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	// CLI overrides only when the flag was explicitly set
	if cmd.Flags().Changed("body") {
		cfg.Body = scoreBodyPath
	}
	if cmd.Flags().Changed("garment") {
		cfg.Garment = scoreGarmentPath
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = scoreVerbose
	}
	if cmd.Flags().Changed("persist") {
		cfg.Persist = scorePersist
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = scoreDatabaseURL
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.Persist && cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("--persist requires DATABASE_URL environment variable or --db-url flag")
	}

	return cfg, nil
}

// loadBodyProfile reads a body profile JSON file on top of population
// defaults, validating against the schema when it is resolvable.
func loadBodyProfile(path string) (*types.BodyProfile, error) {
	if err := validateAgainstSchema("schemas/body_profile.schema.json", path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read body profile: %w", err)
	}

	body := types.NewBodyProfile()
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("failed to parse body profile: %w", err)
	}
	return &body, nil
}

// loadGarmentProfile reads a garment profile JSON file on top of mid-market
// defaults, validating against the schema when it is resolvable.
func loadGarmentProfile(path string) (*types.GarmentProfile, error) {
	if err := validateAgainstSchema("schemas/garment_profile.schema.json", path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read garment profile: %w", err)
	}

	garment := types.NewGarmentProfile()
	if err := json.Unmarshal(data, &garment); err != nil {
		return nil, fmt.Errorf("failed to parse garment profile: %w", err)
	}
	return &garment, nil
}

// validateAgainstSchema checks the input against its schema. Validation
// failures are fatal; an unresolvable or unloadable schema only warns.
func validateAgainstSchema(schemaRelPath, jsonPath string) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return nil
	}

	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("%s does not validate against schema: %w", jsonPath, err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate %s against schema: %v\n", jsonPath, err)
	}
	return nil
}

// writeResultJSON marshals v with indentation to the given path, or stdout
// when path is empty.
func writeResultJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stderr, "Output: %s\n", path)
	return nil
}

// persistScoreRun stores the inputs and results of a CLI scoring run.
func persistScoreRun(ctx context.Context, cfg config.Config, body *types.BodyProfile, garments []*types.GarmentProfile, results []*types.ScoreResult) (string, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return "", fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return "", err
	}

	runID, err := database.CreateRun(ctx, nil, len(garments))
	if err != nil {
		return "", err
	}

	if err := database.SaveArtifact(ctx, runID, db.KindBodyProfile, 0, body); err != nil {
		return "", err
	}
	for i := range garments {
		if err := database.SaveArtifact(ctx, runID, db.KindGarmentProfile, i, garments[i]); err != nil {
			return "", err
		}
		if err := database.SaveArtifact(ctx, runID, db.KindScoreResult, i, results[i]); err != nil {
			return "", err
		}
	}

	if err := database.CompleteRun(ctx, runID, db.RunStatusCompleted); err != nil {
		return "", err
	}
	return runID.String(), nil
}
