package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/config"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/types"
)

var bulkMatchCmd = &cobra.Command{
	Use:   "bulk-match",
	Short: "Screen a directory of candidates against one job description",
	Long:  "Score every candidate JSON file in a directory against one job description, returning a ranked list with an aggregate summary. Candidates that fail to load or score appear as zero-score entries rather than aborting the run.",
	RunE:  runBulkMatch,
}

var (
	bmConfigFile    string
	bmCandidatesDir string
	bmDescription   string
	bmDescriptionIn string
	bmAPIKey        string
	bmConcurrency   int
	bmReports       bool
	bmVerbose       bool
	bmLogJSON       bool
)

func init() {
	bulkMatchCmd.Flags().StringVarP(&bmConfigFile, "config", "c", "", "Path to JSON config file")
	bulkMatchCmd.Flags().StringVar(&bmCandidatesDir, "candidates", "", "Path to candidate JSON file or directory (required)")
	bulkMatchCmd.Flags().StringVar(&bmDescription, "description", "", "Job description text")
	bulkMatchCmd.Flags().StringVar(&bmDescriptionIn, "description-file", "", "Path to a job description text file")
	bulkMatchCmd.Flags().StringVar(&bmAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	bulkMatchCmd.Flags().IntVar(&bmConcurrency, "concurrency", 0, "Concurrent scoring workers")
	bulkMatchCmd.Flags().BoolVar(&bmReports, "reports", false, "Include a full detailed report per candidate")
	bulkMatchCmd.Flags().BoolVarP(&bmVerbose, "verbose", "v", false, "Print a formatted result summary to stderr")
	bulkMatchCmd.Flags().BoolVar(&bmLogJSON, "log-json", false, "Emit JSON logs")

	rootCmd.AddCommand(bulkMatchCmd)
}

func runBulkMatch(_ *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(bmConfigFile, config.Config{
		Candidates:     bmCandidatesDir,
		APIKey:         bmAPIKey,
		MaxConcurrency: bmConcurrency,
		Verbose:        bmVerbose,
		LogJSON:        bmLogJSON,
	})
	if err != nil {
		return err
	}
	if cfg.Candidates == "" {
		return fmt.Errorf("--candidates is required")
	}

	description, err := readTextOrFile(bmDescription, bmDescriptionIn)
	if err != nil {
		return err
	}
	if description == "" {
		return fmt.Errorf("a job description is required (use --description or --description-file)")
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	candidates, err := loadBulkCandidates(cfg.Candidates)
	if err != nil {
		return err
	}

	ctx := context.Background()
	service, cleanup, err := buildService(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := service.BulkMatchCandidates(ctx, &types.BulkMatchRequest{
		Candidates:     candidates,
		JobDescription: description,
		IncludeReports: bmReports,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintBulkSummary(result)
	}
	return printJSON(result)
}

// loadBulkCandidates reads candidate files for a bulk run. Unlike the pool
// loader, a file that fails to load is kept as a placeholder entry so the
// run can report it instead of aborting.
func loadBulkCandidates(path string) ([]types.BulkCandidate, error) {
	files, err := jsonFilesAt(path)
	if err != nil {
		return nil, err
	}

	candidates := make([]types.BulkCandidate, 0, len(files))
	for _, file := range files {
		fileName := filepath.Base(file)
		candidate, err := loadCandidateFile(file)
		if err != nil {
			candidates = append(candidates, types.BulkCandidate{
				FileName: fileName,
				Profile:  &types.CandidateProfile{ID: fileName},
				LoadErr:  err.Error(),
			})
			continue
		}
		candidates = append(candidates, types.BulkCandidate{
			FileName: fileName,
			Profile:  candidate,
		})
	}
	return candidates, nil
}
