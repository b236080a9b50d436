// Package main provides the entry point for the talent matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talent_matcher",
	Short: "Candidate-job matching engine",
	Long:  "Talent Matcher ranks candidates against job postings (and jobs against candidate profiles) using semantic embeddings combined with rule-based scoring of skills, experience, education, location, and salary.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
