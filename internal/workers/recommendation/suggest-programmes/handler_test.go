// internal/workers/recommendation/suggest-programmes/handler_test.go
package suggestprogrammes

import (
	"context"
	"testing"

	"pathfinder-workers/internal/common/logger"
	"pathfinder-workers/internal/models"
	"pathfinder-workers/internal/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Execute_ApprenticeshipAlwaysAffordable(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		Pathway: refdata.PathwayApprenticeship,
		User: models.UserContext{
			Budget:    0,
			Interests: []string{"Technology & Software"},
		},
	})
	require.NoError(t, err)

	// Paid placements have negative costs, so a zero budget still matches.
	require.Len(t, output.Programmes, 3)
	assert.Equal(t, "Google Software Engineering Apprenticeship", output.Programmes[0].Name)
	for _, p := range output.Programmes {
		assert.Negative(t, p.Cost)
	}

	require.Len(t, output.Careers, 5)
	assert.Equal(t, "Software Developer", output.Careers[0].Title)
}

func TestHandler_Execute_BudgetFiltersProgrammes(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		Pathway: refdata.PathwayMicroCredentials,
		User: models.UserContext{
			Budget:    7000,
			Interests: []string{"Technology & Software"},
		},
	})
	require.NoError(t, err)

	// Catalogue order is preserved; only entries at or under 7000 survive.
	require.Len(t, output.Programmes, 3)
	assert.Equal(t, "Le Wagon - Full Stack Web Development", output.Programmes[0].Name)
	assert.Equal(t, "Northcoders - Software Development", output.Programmes[1].Name)
	assert.Equal(t, "CodeClan - Software Development", output.Programmes[2].Name)
	for _, p := range output.Programmes {
		assert.LessOrEqual(t, p.Cost, 7000.0)
	}
}

func TestHandler_Execute_UnknownPathway(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	_, err := h.Execute(context.Background(), &Input{
		Pathway: "Night School",
		User:    models.UserContext{Budget: 10000},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrecognizedPathway)
}

func TestHandler_Execute_UnknownFieldFallsBackForCareers(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		Pathway: refdata.PathwayLocalUniversity,
		User: models.UserContext{
			Budget:    30000,
			Interests: []string{"Science & Research"}, // no career rows for this field
		},
	})
	require.NoError(t, err)

	require.NotEmpty(t, output.Careers)
	assert.Equal(t, "Software Developer", output.Careers[0].Title)
}
