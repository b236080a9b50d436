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

var findCandidatesCmd = &cobra.Command{
	Use:   "find-candidates",
	Short: "Rank the candidate pool against a job posting",
	Long:  "Rank every candidate in the pool against a job posting JSON file, returning candidates that clear the match threshold sorted by score.",
	RunE:  runFindCandidates,
}

var (
	fcConfigFile  string
	fcJobFile     string
	fcCandidates  string
	fcDatabaseURL string
	fcAPIKey      string
	fcProfile     string
	fcMaxResults  int
	fcConcurrency int
	fcVerbose     bool
	fcLogJSON     bool
)

func init() {
	findCandidatesCmd.Flags().StringVarP(&fcConfigFile, "config", "c", "", "Path to JSON config file")
	findCandidatesCmd.Flags().StringVarP(&fcJobFile, "job", "j", "", "Path to job posting JSON file (required)")
	findCandidatesCmd.Flags().StringVar(&fcCandidates, "candidates", "", "Path to candidate JSON file or directory")
	findCandidatesCmd.Flags().StringVar(&fcDatabaseURL, "db-url", "", "PostgreSQL URL for the candidate pool (overrides --candidates)")
	findCandidatesCmd.Flags().StringVar(&fcAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	findCandidatesCmd.Flags().StringVar(&fcProfile, "profile", "", "Weighting profile: comprehensive, candidate_focused, or skills_heavy")
	findCandidatesCmd.Flags().IntVar(&fcMaxResults, "max-results", 0, "Maximum number of candidates to return")
	findCandidatesCmd.Flags().IntVar(&fcConcurrency, "concurrency", 0, "Concurrent scoring workers")
	findCandidatesCmd.Flags().BoolVarP(&fcVerbose, "verbose", "v", false, "Print a formatted result summary to stderr")
	findCandidatesCmd.Flags().BoolVar(&fcLogJSON, "log-json", false, "Emit JSON logs")

	rootCmd.AddCommand(findCandidatesCmd)
}

func runFindCandidates(_ *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(fcConfigFile, config.Config{
		Candidates:     fcCandidates,
		DatabaseURL:    fcDatabaseURL,
		APIKey:         fcAPIKey,
		Profile:        fcProfile,
		MaxResults:     fcMaxResults,
		MaxConcurrency: fcConcurrency,
		Verbose:        fcVerbose,
		LogJSON:        fcLogJSON,
	})
	if err != nil {
		return err
	}
	if fcJobFile == "" {
		return fmt.Errorf("--job is required")
	}
	if cfg.DatabaseURL == "" && cfg.Candidates == "" {
		return fmt.Errorf("a candidate pool is required (use --candidates or --db-url)")
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	job, err := loadJobFile(fcJobFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	service, cleanup, err := buildService(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := service.FindMatchingCandidates(ctx, &types.CandidateSearchRequest{
		Job:        job,
		MaxResults: cfg.MaxResults,
		Profile:    cfg.Profile,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintCandidateMatches(result)
	}
	return printJSON(result)
}
