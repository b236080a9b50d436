package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/config"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/types"
)

var findJobsCmd = &cobra.Command{
	Use:   "find-jobs",
	Short: "Rank the job pool for a candidate profile",
	Long:  "Rank every job in the pool for a candidate profile JSON file, returning jobs that clear the match threshold sorted by score.",
	RunE:  runFindJobs,
}

var (
	fjConfigFile    string
	fjCandidateFile string
	fjJobs          string
	fjDatabaseURL   string
	fjAPIKey        string
	fjMaxResults    int
	fjConcurrency   int
	fjVerbose       bool
	fjLogJSON       bool
)

func init() {
	findJobsCmd.Flags().StringVarP(&fjConfigFile, "config", "c", "", "Path to JSON config file")
	findJobsCmd.Flags().StringVar(&fjCandidateFile, "candidate", "", "Path to candidate profile JSON file (required)")
	findJobsCmd.Flags().StringVar(&fjJobs, "jobs", "", "Path to job JSON file or directory")
	findJobsCmd.Flags().StringVar(&fjDatabaseURL, "db-url", "", "PostgreSQL URL for the job pool (overrides --jobs)")
	findJobsCmd.Flags().StringVar(&fjAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	findJobsCmd.Flags().IntVar(&fjMaxResults, "max-results", 0, "Maximum number of jobs to return")
	findJobsCmd.Flags().IntVar(&fjConcurrency, "concurrency", 0, "Concurrent scoring workers")
	findJobsCmd.Flags().BoolVarP(&fjVerbose, "verbose", "v", false, "Print a formatted result summary to stderr")
	findJobsCmd.Flags().BoolVar(&fjLogJSON, "log-json", false, "Emit JSON logs")

	rootCmd.AddCommand(findJobsCmd)
}

func runFindJobs(_ *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(fjConfigFile, config.Config{
		Jobs:           fjJobs,
		DatabaseURL:    fjDatabaseURL,
		APIKey:         fjAPIKey,
		MaxResults:     fjMaxResults,
		MaxConcurrency: fjConcurrency,
		Verbose:        fjVerbose,
		LogJSON:        fjLogJSON,
	})
	if err != nil {
		return err
	}
	if fjCandidateFile == "" {
		return fmt.Errorf("--candidate is required")
	}
	if cfg.DatabaseURL == "" && cfg.Jobs == "" {
		return fmt.Errorf("a job pool is required (use --jobs or --db-url)")
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	candidate, err := loadCandidateFile(fjCandidateFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	service, cleanup, err := buildService(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := service.FindMatchingJobs(ctx, &types.JobSearchRequest{
		Candidate:  candidate,
		MaxResults: cfg.MaxResults,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintJobMatches(result)
	}
	return printJSON(result)
}
