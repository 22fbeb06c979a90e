package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-profiler/internal/config"
	"github.com/jonathan/cv-profiler/internal/db"
	"github.com/jonathan/cv-profiler/internal/enrich"
	"github.com/jonathan/cv-profiler/internal/ingestion"
	"github.com/jonathan/cv-profiler/internal/observability"
	"github.com/jonathan/cv-profiler/internal/profile"
	"github.com/jonathan/cv-profiler/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a competency profile from one résumé file",
	Long: `Runs the extraction pipeline over a single résumé (plain text or HTML) and writes the profile as JSON next to the input (or into --output-dir).

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runExtractCmd,
}

var (
	extractConfigPath  string
	extractInput       string
	extractOutputDir   string
	extractOnly        string
	extractEnrich      bool
	extractSave        bool
	extractAPIKey      string
	extractDatabaseURL string
	extractVerbose     bool
)

func init() {
	extractCmd.Flags().StringVar(&extractConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	extractCmd.Flags().StringVarP(&extractInput, "input", "i", "", "Path to résumé file (.txt or .html)")
	extractCmd.Flags().StringVarP(&extractOutputDir, "output-dir", "o", "", "Directory for the profile JSON (default: alongside the input)")
	extractCmd.Flags().StringVar(&extractOnly, "only", "", "Restrict extraction to one section: education, experience, skills or languages")
	extractCmd.Flags().BoolVar(&extractEnrich, "enrich", false, "Refine educations and experiences with the LLM")
	extractCmd.Flags().BoolVar(&extractSave, "save", false, "Persist the profile snapshot to the database")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print detailed extraction summaries")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for snapshot persistence
	extractCmd.Flags().StringVar(&extractDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(extractCmd)
}

func runExtractCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveExtractConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("--input is required (or 'input' in the config file)")
	}

	builder, closeEnrich, err := newBuilder(ctx, cfg.APIKey, extractEnrich || cfg.Enrich)
	if err != nil {
		return err
	}
	defer closeEnrich()

	result, err := extractOne(ctx, builder, cfg.Input, profile.Options{
		Section: extractOnly,
		Enrich:  extractEnrich || cfg.Enrich,
	})
	if err != nil {
		return err
	}

	outputPath, err := writeProfileSnapshot(result, cfg.Input, cfg.OutputDir)
	if err != nil {
		return err
	}
	fmt.Printf("Profile written to %s\n", outputPath)

	if extractSave {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("--save requires a database URL (--db-url or DATABASE_URL)")
		}
		if err := saveSnapshot(ctx, cfg.DatabaseURL, result); err != nil {
			return err
		}
	}

	if extractVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintProfileSummary(result)
		printer.PrintSkills(result)
		printer.PrintLanguages(result)
		printer.PrintGaps(result)
	}

	return nil
}

// resolveExtractConfig merges the config file with CLI flags and env vars.
func resolveExtractConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if extractConfigPath != "" {
		loadedCfg, err := config.LoadConfig(extractConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
	}

	// CLI overrides take priority over config file values
	if cmd.Flags().Changed("input") {
		cfg.Input = extractInput
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = extractOutputDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = extractAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = extractDatabaseURL
	}

	// Env vars fill remaining gaps
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	return cfg, nil
}

// newBuilder wires the pipeline, attaching an enrichment client when
// one is both requested and configurable.
func newBuilder(ctx context.Context, apiKey string, enrichWanted bool) (*profile.Builder, func(), error) {
	if !enrichWanted || apiKey == "" {
		if enrichWanted && apiKey == "" {
			fmt.Fprintln(os.Stderr, "Warning: --enrich requested but no API key configured; running heuristics only")
		}
		return profile.New(nil), func() {}, nil
	}

	client, err := enrich.NewGeminiClient(ctx, apiKey, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create enrichment client: %w", err)
	}
	closeFn := func() {
		_ = client.Close()
	}
	return profile.New(enrich.New(client)), closeFn, nil
}

func extractOne(ctx context.Context, builder *profile.Builder, inputPath string, opts profile.Options) (*types.CompetencyProfile, error) {
	doc, err := ingestion.IngestFromFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to ingest %s: %w", inputPath, err)
	}

	result, err := builder.Build(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("extraction failed for %s: %w", inputPath, err)
	}

	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("profile failed invariant validation: %w", err)
	}
	return result, nil
}

// writeProfileSnapshot writes the profile JSON next to the input file,
// or into outputDir when given. Returns the written path.
func writeProfileSnapshot(result *types.CompetencyProfile, inputPath, outputDir string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	outputPath := filepath.Join(dir, stem+"_profile.json")

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write profile: %w", err)
	}
	return outputPath, nil
}

// saveSnapshot persists one profile as a completed extraction run.
func saveSnapshot(ctx context.Context, databaseURL string, result *types.CompetencyProfile) error {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := database.CreateRun(ctx, result.SourceFile)
	if err != nil {
		return err
	}
	if err := database.SaveProfile(ctx, runID, result); err != nil {
		return err
	}
	confidence := result.OverallConfidence
	if err := database.CompleteRun(ctx, runID, db.StatusCompleted, &confidence); err != nil {
		return err
	}
	fmt.Printf("Snapshot saved as run %s\n", runID)
	return nil
}
