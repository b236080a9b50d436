// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidateMatches outputs the top ranked candidates with scores and
// match reasons.
func (p *Printer) PrintCandidateMatches(result *types.CandidateSearchResult) {
	if result == nil || len(result.Candidates) == 0 {
		p.printBox("CANDIDATE MATCHES", "No candidates cleared the match threshold.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total matches: %d (algorithm %s)\n\n", result.TotalFound, result.AlgorithmVersion))

	count := min(len(result.Candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := result.Candidates[i]
		name := match.CandidateID
		if match.Candidate != nil && match.Candidate.Name != "" {
			name = match.Candidate.Name
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %d  Confidence: %d\n", match.Score, match.Confidence))
		if len(match.Reasons) > 0 {
			reasons := strings.Join(match.Reasons, "; ")
			if len(reasons) > 45 {
				reasons = reasons[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", reasons))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(result.Candidates)-maxItemsToShow))
	}

	p.printBox("CANDIDATE MATCHES", sb.String())
}

// PrintJobMatches outputs the top ranked jobs with scores and salary notes.
func (p *Printer) PrintJobMatches(result *types.JobSearchResult) {
	if result == nil || len(result.Jobs) == 0 {
		p.printBox("JOB MATCHES", "No jobs cleared the match threshold.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total matches: %d\n\n", result.TotalFound))

	count := min(len(result.Jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := result.Jobs[i]
		title := match.JobID
		if match.Job != nil && match.Job.Title != "" {
			title = match.Job.Title
			if match.Job.Company != "" {
				title += " @ " + match.Job.Company
			}
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", match.Score))
		if match.SalaryNote != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", match.SalaryNote))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(result.Jobs)-maxItemsToShow))
	}

	if len(result.Insights) > 0 {
		sb.WriteString("\n\nInsights:\n")
		for _, insight := range result.Insights {
			sb.WriteString(fmt.Sprintf("  • %s\n", insight))
		}
	}

	p.printBox("JOB MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDetailedMatch outputs a full single-pair breakdown with strengths,
// gaps, and recommendations.
func (p *Printer) PrintDetailedMatch(result *types.DetailedMatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:    %d\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Confidence: %d\n\n", result.Confidence))

	if len(result.Breakdown) > 0 {
		sb.WriteString("Breakdown:\n")
		for _, component := range []string{"semantic", "skills", "experience", "education"} {
			if score, ok := result.Breakdown[component]; ok {
				sb.WriteString(fmt.Sprintf("  %-11s %d\n", component, score))
			}
		}
		sb.WriteString("\n")
	}

	if len(result.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		for _, strength := range result.Strengths {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", strength))
		}
		sb.WriteString("\n")
	}

	if len(result.Gaps) > 0 {
		sb.WriteString("Gaps:\n")
		for _, gap := range result.Gaps {
			sb.WriteString(fmt.Sprintf("  ⚠ %s (%s, score %d)\n", gap.Component, gap.Severity, gap.Score))
		}
		sb.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		count := min(len(result.Recommendations), 3)
		for i := 0; i < count; i++ {
			rec := result.Recommendations[i].Text
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("DETAILED MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBulkSummary outputs the aggregate view of a bulk screening run.
func (p *Printer) PrintBulkSummary(result *types.BulkMatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Processed:   %d\n", result.Summary.TotalProcessed))
	sb.WriteString(fmt.Sprintf("Successful:  %d\n", result.Summary.SuccessfulMatches))
	sb.WriteString(fmt.Sprintf("Average:     %d\n", result.Summary.AverageScore))
	sb.WriteString(fmt.Sprintf("Top score:   %d\n", result.Summary.TopScore))
	sb.WriteString(fmt.Sprintf("Recommended: %d\n\n", result.Summary.RecommendedCandidates))

	count := min(len(result.Matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := result.Matches[i]
		label := entry.CandidateID
		if entry.FileName != "" {
			label = entry.FileName
		}
		if entry.Error != "" {
			sb.WriteString(fmt.Sprintf("✗ %s: %s\n", label, entry.Error))
			continue
		}
		sb.WriteString(fmt.Sprintf("#%d  %s  (score %d)\n", i+1, label, entry.Score))
	}

	if len(result.Matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(result.Matches)-maxItemsToShow))
	}

	p.printBox("BULK SCREENING SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
