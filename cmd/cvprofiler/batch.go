package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-profiler/internal/config"
	"github.com/jonathan/cv-profiler/internal/profile"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract profiles from a directory of résumés",
	Long:  `Runs the extraction pipeline over every .txt and .html file in a directory. Documents are processed independently and in parallel; one failing document does not stop the batch.`,
	RunE:  runBatchCmd,
}

var (
	batchConfigPath  string
	batchInputDir    string
	batchOutputDir   string
	batchConcurrency int
	batchEnrich      bool
	batchAPIKey      string
)

func init() {
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	batchCmd.Flags().StringVarP(&batchInputDir, "input-dir", "d", "", "Directory of résumé files")
	batchCmd.Flags().StringVarP(&batchOutputDir, "output-dir", "o", "", "Directory for the profile JSON files (default: alongside each input)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Parallel documents (default 4)")
	batchCmd.Flags().BoolVar(&batchEnrich, "enrich", false, "Refine educations and experiences with the LLM")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(batchCmd)
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if batchConfigPath != "" {
		loadedCfg, err := config.LoadConfig(batchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}
	cfg = cfg.MergeWithDefaults(config.Config{})

	if cmd.Flags().Changed("input-dir") {
		cfg.InputDir = batchInputDir
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = batchOutputDir
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = batchConcurrency
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = batchAPIKey
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.InputDir == "" {
		return fmt.Errorf("--input-dir is required (or 'input_dir' in the config file)")
	}

	inputs, err := listResumeFiles(cfg.InputDir)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no .txt or .html files found in %s", cfg.InputDir)
	}

	builder, closeEnrich, err := newBuilder(ctx, cfg.APIKey, batchEnrich || cfg.Enrich)
	if err != nil {
		return err
	}
	defer closeEnrich()

	opts := profile.Options{Enrich: batchEnrich || cfg.Enrich}

	var failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	for _, input := range inputs {
		g.Go(func() error {
			result, err := extractOne(gctx, builder, input, opts)
			if err != nil {
				// Documents are independent: log and move on.
				failed.Add(1)
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return nil
			}

			outputPath, err := writeProfileSnapshot(result, input, cfg.OutputDir)
			if err != nil {
				failed.Add(1)
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return nil
			}
			fmt.Printf("%s -> %s\n", input, outputPath)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d documents failed", n, len(inputs))
	}
	fmt.Printf("Extracted %d profiles\n", len(inputs))
	return nil
}

func listResumeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var inputs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".html", ".htm":
			inputs = append(inputs, filepath.Join(dir, entry.Name()))
		}
	}
	return inputs, nil
}
