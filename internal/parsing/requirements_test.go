package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseJobRequirements_ExtractsAllParts(t *testing.T) {
	description := "Senior engineer role. 5+ years of experience with Python, AWS and Docker. Bachelor degree required."

	reqs := ParseJobRequirements(description)

	assert.Contains(t, reqs.Skills, "Python")
	assert.Contains(t, reqs.Skills, "AWS")
	assert.Contains(t, reqs.Skills, "Docker")
	assert.InDelta(t, 5.0, reqs.Experience, 0.001)
	assert.Contains(t, reqs.Education, "bachelor")
	assert.Contains(t, reqs.Education, "degree")
}

func TestParseJobRequirements_NoStatedExperience(t *testing.T) {
	reqs := ParseJobRequirements("Looking for a React developer.")

	assert.Equal(t, 0.0, reqs.Experience)
}

func TestParseJobRequirements_ExperiencePhrasings(t *testing.T) {
	assert.InDelta(t, 3.0, ParseJobRequirements("3 years experience").Experience, 0.001)
	assert.InDelta(t, 7.0, ParseJobRequirements("7+ yrs in backend").Experience, 0.001)
	assert.InDelta(t, 2.0, ParseJobRequirements("2-4 years preferred").Experience, 0.001)
	assert.InDelta(t, 10.0, ParseJobRequirements("10 Years of Java").Experience, 0.001)
}

func TestParseJobRequirements_EducationMarkers(t *testing.T) {
	reqs := ParseJobRequirements("PhD or Master preferred")

	assert.ElementsMatch(t, []string{"master", "phd"}, reqs.Education)
}

func TestParseJobRequirements_EmptyDescription(t *testing.T) {
	reqs := ParseJobRequirements("")

	assert.Empty(t, reqs.Skills)
	assert.Equal(t, 0.0, reqs.Experience)
	assert.Empty(t, reqs.Education)
}

func TestPostingFromDescription_CarriesDerivedRequirements(t *testing.T) {
	posting := PostingFromDescription("job-1", "React developer, 4 years experience, bachelor degree")

	assert.Equal(t, "job-1", posting.ID)
	assert.Contains(t, posting.Skills, "React")
	assert.InDelta(t, 4.0, posting.RequiredExperience, 0.001)
	assert.Contains(t, posting.Education, "bachelor")
}
