// internal/workers/recommendation/project-roi/handler_test.go
package projectroi

import (
	"context"
	"testing"

	"pathfinder-workers/internal/common/logger"
	"pathfinder-workers/internal/models"
	"pathfinder-workers/internal/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func techUser(income float64, country string) models.UserContext {
	return models.UserContext{
		Budget:        0,
		CurrentIncome: income,
		Interests:     []string{"Technology & Software"},
		TargetCountry: country,
	}
}

func rowFor(t *testing.T, output *Output, pathway string) models.ROIRow {
	t.Helper()
	for _, row := range output.Projections {
		if row.Pathway == pathway {
			return row
		}
	}
	t.Fatalf("no projection for %s", pathway)
	return models.ROIRow{}
}

func TestHandler_Execute_ApprenticeshipEarnsThrough(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{User: techUser(0, "UK")})
	require.NoError(t, err)

	row := rowFor(t, output, refdata.PathwayApprenticeship)
	// Two stipend years at 12000, then 22000 growing 16% for three years.
	assert.Equal(t, 0.0, row.TotalCost)
	assert.InDelta(t, 101123.2, row.TotalEarnings5yr, 0.01)
	assert.InDelta(t, 29603.2, row.Year5Salary, 0.01)
	assert.Positive(t, row.NetWealthYear5)
	// Zero cost with positive earnings pins the multiple at the display cap.
	assert.Equal(t, 99.99, row.ROIMultiple)
	assert.Equal(t, models.OutcomeViable, output.Outcomes[refdata.PathwayApprenticeship].Level)
}

func TestHandler_Execute_InternationalUSADebtWarning(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{User: techUser(0, "USA")})
	require.NoError(t, err)

	row := rowFor(t, output, refdata.PathwayInternationalUniversity)
	// 4 years x (35000 + 14000) costs, one working year at 32000.
	assert.Equal(t, 196000.0, row.TotalCost)
	assert.Equal(t, 32000.0, row.TotalEarnings5yr)
	assert.Equal(t, 32000.0, row.Year5Salary)
	assert.Equal(t, -164000.0, row.NetWealthYear5)
	assert.Equal(t, 0.16, row.ROIMultiple)

	outcome := output.Outcomes[refdata.PathwayInternationalUniversity]
	assert.Equal(t, models.OutcomeDebtWarning, outcome.Level)
	assert.Equal(t, "You will be £164000 in debt after 5 years", outcome.Message)
}

func TestHandler_Execute_LowROIWarning(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{User: techUser(0, "UK")})
	require.NoError(t, err)

	// UK home fees: 3 x 18250 costs against 32000 + 35840 earnings.
	row := rowFor(t, output, refdata.PathwayInternationalUniversity)
	assert.Equal(t, 54750.0, row.TotalCost)
	assert.Equal(t, 1.24, row.ROIMultiple)

	outcome := output.Outcomes[refdata.PathwayInternationalUniversity]
	assert.Equal(t, models.OutcomeLowROI, outcome.Level)
	assert.Equal(t, "Low ROI: Only £1.24 earned per £1 invested", outcome.Message)
}

func TestHandler_Execute_OpportunityCostDelta(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	without, err := h.Execute(context.Background(), &Input{User: techUser(0, "USA")})
	require.NoError(t, err)
	with, err := h.Execute(context.Background(), &Input{User: techUser(60000, "USA")})
	require.NoError(t, err)

	// Forgone income is exactly income x duration for university pathways.
	base := rowFor(t, without, refdata.PathwayInternationalUniversity)
	loaded := rowFor(t, with, refdata.PathwayInternationalUniversity)
	assert.Equal(t, 240000.0, loaded.TotalCost-base.TotalCost)
	assert.Equal(t, -240000.0, loaded.NetWealthYear5-base.NetWealthYear5)

	// Apprenticeships carry no opportunity cost at all.
	baseAppr := rowFor(t, without, refdata.PathwayApprenticeship)
	loadedAppr := rowFor(t, with, refdata.PathwayApprenticeship)
	assert.Equal(t, baseAppr, loadedAppr)
}

func TestHandler_Execute_LedgerInvariants(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	users := []models.UserContext{
		techUser(0, "UK"),
		techUser(25000, "Germany"),
		{Budget: 5000, CurrentIncome: 18000, Interests: []string{"Creative Arts & Design"}, TargetCountry: "Canada"},
		{Budget: 0, CurrentIncome: 0, Interests: []string{"Unknown Field"}, TargetCountry: "Nowhere"},
	}

	for _, user := range users {
		output, err := h.Execute(context.Background(), &Input{User: user})
		require.NoError(t, err)
		require.Len(t, output.Projections, 4)

		for _, row := range output.Projections {
			assert.Equal(t, row.TotalEarnings5yr-row.TotalCost, row.NetWealthYear5, row.Pathway)
			assert.GreaterOrEqual(t, row.ROIMultiple, 0.0)
			assert.LessOrEqual(t, row.ROIMultiple, 99.99)
			assert.GreaterOrEqual(t, row.TotalCost, 0.0)
			assert.Positive(t, row.Year5Salary)
		}
	}
}

func TestHandler_Execute_UnknownFieldUsesDefaultTable(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	unknown, err := h.Execute(context.Background(), &Input{
		User: models.UserContext{Interests: []string{"Astrology"}, TargetCountry: "UK"},
	})
	require.NoError(t, err)
	known, err := h.Execute(context.Background(), &Input{User: techUser(0, "UK")})
	require.NoError(t, err)

	assert.Equal(t, known.Projections, unknown.Projections)
}

func TestHandler_Execute_Deterministic(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))
	input := &Input{User: techUser(12000, "Australia")}

	first, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	second, err := h.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComparePathways(t *testing.T) {
	rows := []models.ROIRow{
		{Pathway: "A", NetWealthYear5: 10000},
		{Pathway: "B", NetWealthYear5: -5000},
		{Pathway: "C", NetWealthYear5: 42000},
	}
	summary := comparePathways(rows)
	assert.Equal(t, "C", summary.BestPathway)
	assert.Equal(t, "B", summary.WorstPathway)
	assert.Equal(t, 47000.0, summary.WealthDelta)
	assert.Equal(t, "Choosing C over B results in £47000 more wealth after 5 years", summary.Recommendation)
}
