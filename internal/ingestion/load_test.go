package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fairscreen/internal/types"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCandidateBatch(t *testing.T) {
	path := writeTemp(t, "batch.json", `{
		"candidates": [
			{"candidate_id": "c1", "age": 34, "gender": "female", "experience_years": 8,
			 "skills": ["Python", "SQL"], "resume_text": "Built ETL pipelines."}
		]
	}`)

	candidates, err := LoadCandidateBatch(path)
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, "c1", candidates[0].CandidateID)
	assert.Equal(t, types.GenderFemale, candidates[0].Gender)
	assert.Equal(t, []string{"Python", "SQL"}, candidates[0].Skills)
}

func TestLoadCandidateBatch_MalformedJSON(t *testing.T) {
	path := writeTemp(t, "batch.json", `{"candidates": [`)

	_, err := LoadCandidateBatch(path)
	assert.Error(t, err)
}

func TestLoadCandidateBatch_MissingFile(t *testing.T) {
	_, err := LoadCandidateBatch(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadJobCriteria(t *testing.T) {
	path := writeTemp(t, "criteria.json", `{
		"job_title": "Data Engineer",
		"required_keywords": ["Python", "SQL", "Airflow"]
	}`)

	criteria, err := LoadJobCriteria(path)
	require.NoError(t, err)

	assert.Equal(t, "Data Engineer", criteria.JobTitle)
	assert.Len(t, criteria.RequiredKeywords, 3)
}

func TestLoadJobCriteria_MissingTitle(t *testing.T) {
	path := writeTemp(t, "criteria.json", `{"required_keywords": ["Python"]}`)

	_, err := LoadJobCriteria(path)
	assert.Error(t, err)
}
