// Package parsing derives structured job requirements from free-text job
// descriptions.
package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/talent-matcher/internal/skills"
	"github.com/jonathan/talent-matcher/internal/types"
)

// experiencePattern matches phrases like "5 years", "3+ yrs", "2-4 years".
var experiencePattern = regexp.MustCompile(`(?i)(\d+)[\s\-+]*(?:years?|yrs?)`)

// degreeMarkers are the education keywords recognized in descriptions.
var degreeMarkers = []string{"bachelor", "master", "phd", "degree"}

// ParseJobRequirements extracts skills, a numeric experience requirement,
// and education markers from a free-text job description. Extraction is
// purely rule-based; text the vocabulary does not cover simply yields
// fewer requirements, never an error.
func ParseJobRequirements(description string) *types.JobRequirements {
	return &types.JobRequirements{
		Skills:     skills.ExtractFromText(description),
		Experience: extractExperienceRequirement(description),
		Education:  extractEducationMarkers(description),
	}
}

// extractExperienceRequirement returns the first stated "N years" figure,
// or 0 when the description states no requirement.
func extractExperienceRequirement(text string) float64 {
	match := experiencePattern.FindStringSubmatch(text)
	if match == nil {
		return 0
	}

	years, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return float64(years)
}

// extractEducationMarkers returns the degree keywords present in the text.
func extractEducationMarkers(text string) []string {
	lower := strings.ToLower(text)

	var markers []string
	for _, marker := range degreeMarkers {
		if strings.Contains(lower, marker) {
			markers = append(markers, marker)
		}
	}
	return markers
}

// PostingFromDescription builds an implicit JobPosting from a free-text
// description, for callers that only have the raw text.
func PostingFromDescription(id, description string) *types.JobPosting {
	reqs := ParseJobRequirements(description)
	return &types.JobPosting{
		ID:                 id,
		Description:        description,
		Skills:             reqs.Skills,
		RequiredExperience: reqs.Experience,
		Education:          reqs.Education,
	}
}
