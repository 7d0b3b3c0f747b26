package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestions_BankShape(t *testing.T) {
	require.Len(t, Questions, 7)
	assert.Equal(t, 70, MaxTraitSum)

	seen := map[string]bool{}
	for _, q := range Questions {
		assert.False(t, seen[q.ID], "duplicate question id %s", q.ID)
		seen[q.ID] = true
		assert.Len(t, q.Options, 4)
		for _, opt := range []string{"A", "B", "C", "D"} {
			_, ok := q.Options[opt]
			assert.True(t, ok, "%s missing option %s", q.ID, opt)
			for _, weights := range []OptionWeights{q.Weights.Grit, q.Weights.HandsOn, q.Weights.Structure, q.Weights.RiskTolerance} {
				w, ok := weights.For(opt)
				require.True(t, ok)
				assert.GreaterOrEqual(t, w, 0)
				assert.LessOrEqual(t, w, MaxWeightPerQuestion)
			}
		}
	}
}

func TestQuestionByID(t *testing.T) {
	q, ok := QuestionByID("q4_uncertainty_tolerance")
	require.True(t, ok)
	assert.Equal(t, 9, q.Weights.Structure.A)
	assert.Equal(t, 9, q.Weights.RiskTolerance.D)

	_, ok = QuestionByID("q8_does_not_exist")
	assert.False(t, ok)
}

func TestKeywordCategories(t *testing.T) {
	require.Len(t, KeywordCategories, 7)

	byName := map[string]KeywordCategory{}
	for _, c := range KeywordCategories {
		assert.NotEmpty(t, c.Keywords, "category %s has no keywords", c.Name)
		assert.Positive(t, c.Weight)
		byName[c.Name] = c
	}

	assert.Equal(t, 1.5, byName["hands_on"].Weight)
	assert.Equal(t, 1.2, byName["leadership"].Weight)
	assert.Equal(t, 1.0, byName["grit"].Weight)

	for name := range TraitKeywordCategories {
		_, ok := byName[name]
		assert.True(t, ok, "trait category %s missing from keyword list", name)
	}
}

func TestTraitRange(t *testing.T) {
	r := TraitRange{Min: 5, Max: 10}
	assert.True(t, r.Contains(5))
	assert.True(t, r.Contains(10))
	assert.False(t, r.Contains(4.9))
	assert.Equal(t, 2.0, r.Distance(3))
	assert.Equal(t, 0.0, r.Distance(7))

	r = TraitRange{Min: 0, Max: 6}
	assert.Equal(t, 1.5, r.Distance(7.5))
}

func TestPathways_Order(t *testing.T) {
	names := PathwayNames()
	require.Equal(t, []string{
		PathwayInternationalUniversity,
		PathwayLocalUniversity,
		PathwayApprenticeship,
		PathwayMicroCredentials,
	}, names)

	for _, p := range Pathways {
		assert.Len(t, p.IdealProfile, 4, "%s profile incomplete", p.Name)
		assert.GreaterOrEqual(t, p.MinBudget, 0.0)
	}

	appr, ok := PathwayByName(PathwayApprenticeship)
	require.True(t, ok)
	assert.Equal(t, 0.0, appr.MinBudget)
	assert.Equal(t, TraitRange{Min: 7, Max: 10}, appr.IdealProfile["hands_on"])
}

func TestSalaryData_Complete(t *testing.T) {
	require.Len(t, SalaryData, 8)
	for field, table := range SalaryData {
		for _, pathway := range PathwayNames() {
			band, ok := table[pathway]
			require.True(t, ok, "%s missing %s", field, pathway)
			assert.Positive(t, band.Starting)
			assert.Positive(t, band.GrowthRate)
		}
	}
}

func TestSalaryFor_UnknownFieldFallsBack(t *testing.T) {
	band, ok := SalaryFor("Astrology", PathwayApprenticeship)
	require.True(t, ok)
	assert.Equal(t, SalaryData[DefaultField][PathwayApprenticeship], band)
}

func TestCostFor(t *testing.T) {
	c, ok := CostFor(PathwayInternationalUniversity, "USA")
	require.True(t, ok)
	assert.Equal(t, CostProfile{Tuition: 35000, Living: 14000, DurationYears: 4}, c)
	assert.Equal(t, 49000.0, c.AnnualCost())

	// Unknown countries resolve to the home-country row.
	c, ok = CostFor(PathwayLocalUniversity, "Atlantis")
	require.True(t, ok)
	assert.Equal(t, UniversityCosts[PathwayLocalUniversity][FallbackCountry], c)

	c, ok = CostFor(PathwayApprenticeship, "USA")
	require.True(t, ok)
	assert.Negative(t, c.Tuition)
	assert.Equal(t, 2.0, c.DurationYears)

	c, ok = CostFor(PathwayMicroCredentials, "")
	require.True(t, ok)
	assert.Equal(t, 0.5, c.DurationYears)

	_, ok = CostFor("Night School", "UK")
	assert.False(t, ok)
}

func TestCatalogue(t *testing.T) {
	for _, pathway := range PathwayNames() {
		assert.NotEmpty(t, Programmes[pathway], "no programmes for %s", pathway)
	}

	top := ProgrammesForPathway(PathwayMicroCredentials, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "Le Wagon - Full Stack Web Development", top[0].Name)

	all := ProgrammesForPathway(PathwayApprenticeship, 0)
	assert.Len(t, all, 6)

	careers := CareersForField("Technology & Software", 5)
	require.Len(t, careers, 5)
	assert.Equal(t, "Software Developer", careers[0].Title)

	c, ok := CareerByTitle("devops engineer")
	require.True(t, ok)
	assert.Equal(t, 52000.0, c.Year5Salary)

	_, ok = CareerByTitle("Astronaut")
	assert.False(t, ok)
}
