// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRegistry = `{
  "version": "1.0",
  "lastUpdated": "2026-08-14",
  "activities": [
    {
      "id": "score-psychometric",
      "displayName": "Score Psychometric Questionnaire",
      "category": "assessment",
      "taskType": "score-psychometric",
      "errorCodes": ["PARSE_ERROR", "INCOMPLETE_INPUT"],
      "timeout": "10s",
      "retries": 1
    },
    {
      "id": "rank-pathways",
      "displayName": "Rank Education Pathways",
      "category": "recommendation",
      "taskType": "rank-pathways",
      "errorCodes": ["PARSE_ERROR", "RANKING_FAILED"],
      "timeout": "10s",
      "retries": 1
    }
  ]
}`

func TestParse_ValidDocument(t *testing.T) {
	reg, err := Parse([]byte(sampleRegistry))
	require.NoError(t, err)

	assert.Equal(t, "1.0", reg.Version)
	require.Len(t, reg.Activities, 2)
	assert.Equal(t, []string{"score-psychometric", "rank-pathways"}, reg.TaskTypes())
}

func TestParse_MissingTaskType(t *testing.T) {
	doc := `{
	  "version": "1.0",
	  "activities": [{"id": "x", "category": "assessment"}]
	}`

	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid registry document")
}

func TestParse_RejectsUppercaseTaskType(t *testing.T) {
	doc := `{
	  "version": "1.0",
	  "activities": [{"id": "x", "category": "assessment", "taskType": "ScorePsychometric"}]
	}`

	_, err := Parse([]byte(doc))
	require.Error(t, err)
}

func TestParse_RejectsDuplicateTaskTypes(t *testing.T) {
	doc := `{
	  "version": "1.0",
	  "activities": [
	    {"id": "a", "category": "assessment", "taskType": "merge-scores"},
	    {"id": "b", "category": "assessment", "taskType": "merge-scores"}
	  ]
	}`

	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate task type")
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleRegistry), 0o644))

	reg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, reg.Activities, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.Error(t, err)
}

func TestByTaskType(t *testing.T) {
	reg, err := Parse([]byte(sampleRegistry))
	require.NoError(t, err)

	a, ok := reg.ByTaskType("rank-pathways")
	require.True(t, ok)
	assert.Equal(t, "recommendation", a.Category)
	assert.Contains(t, a.ErrorCodes, "RANKING_FAILED")

	_, ok = reg.ByTaskType("unknown-task")
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	reg, err := Parse([]byte(sampleRegistry))
	require.NoError(t, err)

	assessment := reg.ByCategory("assessment")
	require.Len(t, assessment, 1)
	assert.Equal(t, "score-psychometric", assessment[0].ID)

	assert.Empty(t, reg.ByCategory("infrastructure"))
}

func TestShippedRegistry(t *testing.T) {
	reg, err := Load(filepath.Join("..", "..", "configs", "activity-registry.json"))
	require.NoError(t, err)

	want := []string{
		"validate-assessment-input",
		"score-psychometric",
		"analyze-text",
		"merge-scores",
		"rank-pathways",
		"project-roi",
		"suggest-programmes",
		"build-report",
	}
	assert.Equal(t, want, reg.TaskTypes())

	for _, a := range reg.Activities {
		assert.NotEmpty(t, a.Description, "activity %s has no description", a.ID)
		assert.Contains(t, a.ErrorCodes, "PARSE_ERROR", "activity %s", a.ID)
		assert.Contains(t, a.Workflows, "pathway-assessment", "activity %s", a.ID)
	}
}
