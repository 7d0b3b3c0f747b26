// internal/workers/assessment/analyze-text/handler_test.go
package analyzetext

import (
	"context"
	"strings"
	"testing"

	"pathfinder-workers/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Execute_MakerNarrative(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		RequestID: "req-1",
		Text:      "I built a robot, led our team, and tried again despite having failed.",
	})
	require.NoError(t, err)

	analysis := output.Analysis
	assert.False(t, analysis.InsufficientSignal)

	assert.Equal(t, 0.8, analysis.Scores["hands_on"]) // 1 match x 1.5 / 2
	assert.Equal(t, 1.5, analysis.Scores["grit"])     // 3 matches x 1.0 / 2
	assert.Equal(t, 0.6, analysis.Scores["leadership"])
	assert.NotContains(t, analysis.Scores, "structure")
	assert.NotContains(t, analysis.Scores, "risk_tolerance")

	assert.Equal(t, []string{"built"}, analysis.KeywordsFound["hands_on"])
	assert.Equal(t, []string{"despite", "failed", "tried again"}, analysis.KeywordsFound["grit"])
	assert.Equal(t, 5, analysis.TotalMatches)

	// Insight order follows category declaration order.
	require.Len(t, analysis.Insights, 3)
	assert.Equal(t, "hands_on", analysis.Insights[0].Category)
	assert.Equal(t, "grit", analysis.Insights[1].Category)
	assert.Equal(t, "leadership", analysis.Insights[2].Category)
	assert.Equal(t, "some", analysis.Insights[1].Level)
}

func TestHandler_Execute_InsufficientSignal(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace only", text: "        "},
		{name: "too short", text: "built it"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := h.Execute(context.Background(), &Input{Text: tt.text})
			require.NoError(t, err)
			assert.True(t, output.Analysis.InsufficientSignal)
			assert.True(t, output.Analysis.Empty())
			assert.Empty(t, output.Analysis.Scores)
			assert.Equal(t, "No additional profile information detected.", output.ProfileSummary)
		})
	}
}

func TestHandler_Execute_ScoreCapAndTruncation(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	// 14 distinct hands_on keywords: 14 x 1.5 / 2 = 10.5, capped at 10.
	text := strings.Join([]string{
		"built", "created", "designed", "constructed", "assembled",
		"crafted", "engineered", "fabricated", "installed", "repaired",
		"renovated", "restored", "arduino", "soldering",
	}, " ")

	output, err := h.Execute(context.Background(), &Input{Text: text})
	require.NoError(t, err)

	assert.Equal(t, 10.0, output.Analysis.Scores["hands_on"])
	assert.Len(t, output.Analysis.KeywordsFound["hands_on"], 5)
	require.NotEmpty(t, output.Analysis.Insights)
	assert.Equal(t, "strong", output.Analysis.Insights[0].Level)
	assert.Len(t, output.Analysis.Insights[0].Examples, 3)
}

func TestHandler_Execute_SubstringMatching(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	// "led" is contained in "failed"; containment is intentional behavior.
	output, err := h.Execute(context.Background(), &Input{Text: "the project failed spectacularly"})
	require.NoError(t, err)

	assert.Contains(t, output.Analysis.KeywordsFound["leadership"], "led")
	assert.Contains(t, output.Analysis.KeywordsFound["grit"], "failed")
}

func TestHandler_Execute_CaseInsensitive(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{Text: "FOUNDED a STARTUP last year"})
	require.NoError(t, err)

	assert.Contains(t, output.Analysis.KeywordsFound["risk_tolerance"], "startup")
	assert.Contains(t, output.Analysis.KeywordsFound["risk_tolerance"], "founded")
}

func TestProfileSummary_TopThreeByScore(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		Text: "I built a robot, led our team, and tried again despite having failed.",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"**Some Grit** (e.g., despite, failed) • **Some Hands On** (e.g., built) • **Some Leadership** (e.g., led)",
		output.ProfileSummary)
}
