// Package main provides the entry point for the CV profiler CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvprofiler",
	Short: "CV competency profile extractor",
	Long:  "cvprofiler turns raw résumé text into a structured competency profile: educations, experiences, years of experience, languages, hard & soft skills and mastered tools, each with evidence and confidence scores.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
