package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/config"
	"github.com/jonathan/talent-matcher/internal/db"
	"github.com/jonathan/talent-matcher/internal/embedding"
	"github.com/jonathan/talent-matcher/internal/logger"
	"github.com/jonathan/talent-matcher/internal/matching"
	"github.com/jonathan/talent-matcher/internal/schemas"
	"github.com/jonathan/talent-matcher/internal/skills"
	"github.com/jonathan/talent-matcher/internal/types"
)

// effectiveConfig merges CLI flag values over an optional config file.
// Flags win; the file fills whatever the flags left empty.
func effectiveConfig(configPath string, flags config.Config) (config.Config, error) {
	if configPath == "" {
		return flags, nil
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := fileCfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return flags.MergeWithDefaults(*fileCfg), nil
}

// newLogger builds the CLI logger from config.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.LogJSON, cfg.Verbose)
}

// buildService wires the embedding client, the candidate and job pools, and
// the matching engine. Pools come from Postgres when a database URL is set,
// otherwise from the candidate/job JSON paths; either pool may be absent.
// The returned cleanup closes everything the service holds open.
func buildService(ctx context.Context, cfg config.Config, log *zap.Logger) (*matching.Service, func(), error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, nil, fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	embCfg := embedding.DefaultConfig()
	if cfg.EmbeddingModel != "" {
		embCfg = embCfg.WithModel(cfg.EmbeddingModel)
	}
	embedder, err := embedding.NewClient(ctx, embCfg, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create embedding client: %w", err)
	}

	var candidatePool matching.CandidatePool
	var jobPool matching.JobPool
	var database *db.DB

	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			_ = embedder.Close()
			return nil, nil, err
		}
		candidatePool = database.Candidates()
		jobPool = database.Jobs()
	} else {
		if cfg.Candidates != "" {
			candidates, err := loadCandidates(cfg.Candidates)
			if err != nil {
				_ = embedder.Close()
				return nil, nil, err
			}
			candidatePool = db.NewMemoryCandidatePool(candidates)
		}
		if cfg.Jobs != "" {
			jobs, err := loadJobs(cfg.Jobs)
			if err != nil {
				_ = embedder.Close()
				return nil, nil, err
			}
			jobPool = db.NewMemoryJobPool(jobs)
		}
	}

	service := matching.NewService(embedder, candidatePool, jobPool, log, matching.Config{
		MaxConcurrency: cfg.MaxConcurrency,
	})

	cleanup := func() {
		_ = embedder.Close()
		if database != nil {
			database.Close()
		}
	}
	return service, cleanup, nil
}

// jsonFilesAt expands a path into the JSON files it refers to: the path
// itself for a file, or its *.json entries (sorted) for a directory.
func jsonFilesAt(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	matches, err := filepath.Glob(filepath.Join(path, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", path, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no JSON files found in %s", path)
	}
	sort.Strings(matches)
	return matches, nil
}

// loadCandidates reads candidate profiles from a JSON file or a directory
// of JSON files, validating each against the candidate schema.
func loadCandidates(path string) ([]*types.CandidateProfile, error) {
	files, err := jsonFilesAt(path)
	if err != nil {
		return nil, err
	}

	candidates := make([]*types.CandidateProfile, 0, len(files))
	for _, file := range files {
		candidate, err := loadCandidateFile(file)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// loadCandidateFile reads and validates a single candidate profile. Skill
// names are canonicalized on the way in so aliases like "js" or "golang"
// match postings that spell the canonical name.
func loadCandidateFile(path string) (*types.CandidateProfile, error) {
	if err := schemas.ValidateCandidateFile(path); err != nil {
		return nil, fmt.Errorf("candidate file %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file %s: %w", path, err)
	}

	var candidate types.CandidateProfile
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("failed to parse candidate file %s: %w", path, err)
	}
	candidate.Skills = skills.NormalizeAll(candidate.Skills)
	return &candidate, nil
}

// loadJobs reads job postings from a JSON file or a directory of JSON
// files, validating each against the job schema.
func loadJobs(path string) ([]*types.JobPosting, error) {
	files, err := jsonFilesAt(path)
	if err != nil {
		return nil, err
	}

	jobs := make([]*types.JobPosting, 0, len(files))
	for _, file := range files {
		job, err := loadJobFile(file)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// loadJobFile reads and validates a single job posting.
func loadJobFile(path string) (*types.JobPosting, error) {
	if err := schemas.ValidateJobFile(path); err != nil {
		return nil, fmt.Errorf("job file %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}
	job.Skills = skills.NormalizeAll(job.Skills)
	return &job, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}

// readTextOrFile returns inline text as-is, or the contents of textFile
// when the inline text is empty.
func readTextOrFile(text, textFile string) (string, error) {
	if text != "" {
		return text, nil
	}
	if textFile == "" {
		return "", nil
	}
	data, err := os.ReadFile(textFile)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", textFile, err)
	}
	return string(data), nil
}
