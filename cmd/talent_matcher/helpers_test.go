package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/scoring"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCandidateFile_ValidProfile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "candidate.json", `{
		"id": "c-1",
		"name": "Alice",
		"skills": ["Go", "AWS"],
		"total_experience": 6,
		"location": "Berlin"
	}`)

	candidate, err := loadCandidateFile(path)

	require.NoError(t, err)
	assert.Equal(t, "c-1", candidate.ID)
	assert.Equal(t, []string{"Go", "AWS"}, candidate.Skills)
	assert.InDelta(t, 6.0, candidate.TotalExperience, 0.001)
}

func TestLoadCandidateFile_CanonicalizesSkillAliases(t *testing.T) {
	path := writeFile(t, t.TempDir(), "candidate.json", `{
		"id": "c-1",
		"skills": ["js", "golang", "JS"]
	}`)

	candidate, err := loadCandidateFile(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"JavaScript", "Go"}, candidate.Skills)
}

func TestLoadedAliasSkillsMatchCanonicalRequirement(t *testing.T) {
	path := writeFile(t, t.TempDir(), "candidate.json", `{
		"id": "c-1",
		"skills": ["js"]
	}`)

	candidate, err := loadCandidateFile(path)

	require.NoError(t, err)
	result := scoring.SkillsMatch(candidate.Skills, []string{"JavaScript"})
	assert.Equal(t, 100, result.Score)
}

func TestLoadCandidateFile_InvalidJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "candidate.json", `{broken`)

	_, err := loadCandidateFile(path)

	assert.Error(t, err)
}

func TestLoadCandidates_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", `{"id": "c-2", "skills": ["Python"]}`)
	writeFile(t, dir, "a.json", `{"id": "c-1", "skills": ["Go"]}`)
	writeFile(t, dir, "notes.txt", "not a profile")

	candidates, err := loadCandidates(dir)

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	// Directory entries load in sorted file name order.
	assert.Equal(t, "c-1", candidates[0].ID)
	assert.Equal(t, "c-2", candidates[1].ID)
}

func TestLoadCandidates_EmptyDirectory(t *testing.T) {
	_, err := loadCandidates(t.TempDir())

	assert.Error(t, err)
}

func TestLoadJobFile_ValidPosting(t *testing.T) {
	path := writeFile(t, t.TempDir(), "job.json", `{
		"id": "j-1",
		"title": "Backend Engineer",
		"description": "Go services, 5 years experience",
		"skills": ["Go"],
		"required_experience": 5,
		"salary": {"min": 70000, "max": 90000}
	}`)

	job, err := loadJobFile(path)

	require.NoError(t, err)
	assert.Equal(t, "j-1", job.ID)
	assert.Equal(t, "Backend Engineer", job.Title)
	require.NotNil(t, job.Salary)
	assert.Equal(t, 70000, job.Salary.Min)
}

func TestLoadJobFile_CanonicalizesSkillAliases(t *testing.T) {
	path := writeFile(t, t.TempDir(), "job.json", `{
		"id": "j-1",
		"title": "Frontend Engineer",
		"skills": ["reactjs", "ts"]
	}`)

	job, err := loadJobFile(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"React", "TypeScript"}, job.Skills)
}

func TestJSONFilesAt_SingleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "one.json", `{}`)

	files, err := jsonFilesAt(path)

	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestJSONFilesAt_MissingPath(t *testing.T) {
	_, err := jsonFilesAt(filepath.Join(t.TempDir(), "nope"))

	assert.Error(t, err)
}

func TestReadTextOrFile_InlineWins(t *testing.T) {
	text, err := readTextOrFile("inline", "ignored.txt")

	require.NoError(t, err)
	assert.Equal(t, "inline", text)
}

func TestReadTextOrFile_ReadsFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "desc.txt", "from file")

	text, err := readTextOrFile("", path)

	require.NoError(t, err)
	assert.Equal(t, "from file", text)
}

func TestReadTextOrFile_BothEmpty(t *testing.T) {
	text, err := readTextOrFile("", "")

	require.NoError(t, err)
	assert.Equal(t, "", text)
}
