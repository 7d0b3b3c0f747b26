// internal/workers/recommendation/rank-pathways/handler_test.go
package rankpathways

import (
	"context"
	"testing"

	"pathfinder-workers/internal/common/logger"
	"pathfinder-workers/internal/models"
	"pathfinder-workers/internal/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goldenProfile() models.TraitProfile {
	return models.TraitProfile{Grit: 7.6, HandsOn: 7.0, Structure: 5.7, RiskTolerance: 6.4}
}

func TestFitScore(t *testing.T) {
	midProfile := models.TraitProfile{Grit: 5, HandsOn: 5, Structure: 5, RiskTolerance: 5}

	tests := []struct {
		name     string
		profile  models.TraitProfile
		pathway  string
		expected float64
	}{
		{
			name:     "all traits inside ideal bands",
			profile:  goldenProfile(),
			pathway:  refdata.PathwayLocalUniversity,
			expected: 100,
		},
		{
			name:     "distance penalties accumulate",
			profile:  midProfile,
			pathway:  refdata.PathwayMicroCredentials,
			expected: 90, // grit -5, hands_on -2.5, risk -2.5
		},
		{
			name:     "single trait outside",
			profile:  midProfile,
			pathway:  refdata.PathwayInternationalUniversity,
			expected: 97.5,
		},
		{
			name:     "far-off profile",
			profile:  models.TraitProfile{Grit: 0, HandsOn: 0, Structure: 10, RiskTolerance: 10},
			pathway:  refdata.PathwayApprenticeship,
			expected: 65, // grit -15, hands_on -17.5, structure -2.5, risk in band
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			archetype, ok := refdata.PathwayByName(tt.pathway)
			require.True(t, ok)
			assert.Equal(t, tt.expected, fitScore(tt.profile, archetype))
		})
	}
}

func TestFitScore_Bounds(t *testing.T) {
	extremes := []models.TraitProfile{
		{Grit: 0, HandsOn: 0, Structure: 0, RiskTolerance: 0},
		{Grit: 10, HandsOn: 10, Structure: 10, RiskTolerance: 10},
		{Grit: 0, HandsOn: 10, Structure: 0, RiskTolerance: 10},
	}
	for _, profile := range extremes {
		for _, archetype := range refdata.Pathways {
			score := fitScore(profile, archetype)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	}
}

func TestHandler_Execute_TieBreaksByDeclarationOrder(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	// The golden profile scores 100 against Local University, Apprenticeship
	// and Micro-Credentials alike; the first declared pathway wins the tie.
	output, err := h.Execute(context.Background(), &Input{
		Scores: goldenProfile(),
		User:   models.UserContext{Budget: 15000},
	})
	require.NoError(t, err)

	assert.Equal(t, refdata.PathwayLocalUniversity, output.Pathway)
	assert.Equal(t, 100.0, output.FitScore)
	assert.Equal(t, 0.0, output.AllFitScores[refdata.PathwayInternationalUniversity])

	require.NotNil(t, output.Alternative)
	assert.Equal(t, refdata.PathwayApprenticeship, output.Alternative.Pathway)
	assert.Equal(t, 100.0, output.Alternative.FitScore)
}

func TestHandler_Execute_BudgetGatesToExactZero(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		Scores: goldenProfile(),
		User:   models.UserContext{Budget: 0},
	})
	require.NoError(t, err)

	assert.Equal(t, refdata.PathwayApprenticeship, output.Pathway)
	for _, name := range []string{
		refdata.PathwayInternationalUniversity,
		refdata.PathwayLocalUniversity,
		refdata.PathwayMicroCredentials,
	} {
		assert.Equal(t, 0.0, output.AllFitScores[name], name)
	}
	// Everything else is unaffordable, so no alternative exists.
	assert.Nil(t, output.Alternative)
}

func TestHandler_Execute_ReasoningAndNextSteps(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		Scores: goldenProfile(),
		User:   models.UserContext{Budget: 15000, CurrentIncome: 0},
	})
	require.NoError(t, err)

	require.Equal(t, refdata.PathwayLocalUniversity, output.Pathway)
	assert.Equal(t, []string{
		"You benefit from formal academic structure",
		"Local university optimizes ROI within your budget",
		"You seek a balanced risk-reward profile",
		"This pathway is an excellent match (fit score: 100.0/100)",
	}, output.Reasoning)

	require.Len(t, output.NextSteps, 5)
	assert.Contains(t, output.NextSteps[0], "Compare programs at local universities")
}

func TestBuildReasoning_ConstrainedFallback(t *testing.T) {
	reasons := buildReasoning(
		refdata.PathwayApprenticeship,
		models.TraitProfile{Grit: 3, HandsOn: 2, Structure: 9, RiskTolerance: 2},
		models.UserContext{Budget: 50000, CurrentIncome: 30000},
		42.5,
	)
	require.Len(t, reasons, 1)
	assert.Equal(t, "This is your best option given constraints, but consider alternatives", reasons[0])
}
