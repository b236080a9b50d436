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

var detailedMatchCmd = &cobra.Command{
	Use:   "detailed-match",
	Short: "Deep breakdown of one candidate against a job description",
	Long:  "Score a single candidate against a free-text job description, reporting the component breakdown, strengths, gaps, and a skills gap analysis.",
	RunE:  runDetailedMatch,
}

var (
	dmConfigFile    string
	dmCandidateFile string
	dmDescription   string
	dmDescriptionIn string
	dmAPIKey        string
	dmRecommend     bool
	dmVerbose       bool
	dmLogJSON       bool
)

func init() {
	detailedMatchCmd.Flags().StringVarP(&dmConfigFile, "config", "c", "", "Path to JSON config file")
	detailedMatchCmd.Flags().StringVar(&dmCandidateFile, "candidate", "", "Path to candidate profile JSON file (required)")
	detailedMatchCmd.Flags().StringVar(&dmDescription, "description", "", "Job description text")
	detailedMatchCmd.Flags().StringVar(&dmDescriptionIn, "description-file", "", "Path to a job description text file")
	detailedMatchCmd.Flags().StringVar(&dmAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	detailedMatchCmd.Flags().BoolVar(&dmRecommend, "recommendations", false, "Include remediation recommendations")
	detailedMatchCmd.Flags().BoolVarP(&dmVerbose, "verbose", "v", false, "Print a formatted result summary to stderr")
	detailedMatchCmd.Flags().BoolVar(&dmLogJSON, "log-json", false, "Emit JSON logs")

	rootCmd.AddCommand(detailedMatchCmd)
}

func runDetailedMatch(_ *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(dmConfigFile, config.Config{
		APIKey:  dmAPIKey,
		Verbose: dmVerbose,
		LogJSON: dmLogJSON,
	})
	if err != nil {
		return err
	}
	if dmCandidateFile == "" {
		return fmt.Errorf("--candidate is required")
	}

	description, err := readTextOrFile(dmDescription, dmDescriptionIn)
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

	candidate, err := loadCandidateFile(dmCandidateFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	service, cleanup, err := buildService(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := service.CalculateDetailedMatch(ctx, &types.DetailedMatchRequest{
		Candidate:              candidate,
		JobDescription:         description,
		IncludeRecommendations: dmRecommend,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintDetailedMatch(result)
	}
	return printJSON(result)
}
