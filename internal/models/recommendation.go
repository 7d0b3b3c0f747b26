// internal/models/recommendation.go
package models

// OutcomeLevel is the three-way financial warning classification of one ROI row.
type OutcomeLevel string

const (
	OutcomeDebtWarning OutcomeLevel = "debt_warning"
	OutcomeLowROI      OutcomeLevel = "low_roi"
	OutcomeViable      OutcomeLevel = "viable"
)

// ROIRow is the five-year financial projection for one pathway. Values are kept
// unrounded so that NetWealthYear5 == TotalEarnings5yr - TotalCost holds exactly;
// rounding is a display concern.
type ROIRow struct {
	Pathway                string  `json:"pathway"`
	TotalCost              float64 `json:"totalCost"`
	Year5Salary            float64 `json:"year5Salary"`
	NetWealthYear5         float64 `json:"netWealthYear5"`
	ROIMultiple            float64 `json:"roiMultiple"`
	TotalEarnings5yr       float64 `json:"totalEarnings5yr"`
	EducationDurationYears float64 `json:"educationDurationYears"`
}

// PathwayOutcome pairs the warning classification of one ROI row with its
// human-readable message.
type PathwayOutcome struct {
	Level   OutcomeLevel `json:"level"`
	Message string       `json:"message"`
}

// ComparisonSummary ranks the four ROI rows by five-year net wealth.
type ComparisonSummary struct {
	BestPathway    string  `json:"bestPathway"`
	BestNetWealth  float64 `json:"bestNetWealth"`
	WorstPathway   string  `json:"worstPathway"`
	WorstNetWealth float64 `json:"worstNetWealth"`
	WealthDelta    float64 `json:"wealthDelta"`
	Recommendation string  `json:"recommendation"`
}

// PathwayRanking is the output of fit scoring across all four pathways.
type PathwayRanking struct {
	Pathway     string             `json:"pathway"`
	FitScore    float64            `json:"fitScore"`
	AllScores   map[string]float64 `json:"allFitScores"`
	Alternative *AlternativeChoice `json:"alternative,omitempty"`
	Reasoning   []string           `json:"reasoning"`
	NextSteps   []string           `json:"nextSteps"`
}

// AlternativeChoice is the second-best eligible pathway. Absence (nil) is the
// explicit "no viable alternative" signal.
type AlternativeChoice struct {
	Pathway  string  `json:"pathway"`
	FitScore float64 `json:"fitScore"`
}

// ProgrammeSuggestion is a concrete programme matched to the chosen pathway.
type ProgrammeSuggestion struct {
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	Location          string  `json:"location"`
	Duration          string  `json:"duration"`
	Cost              float64 `json:"cost"`
	EntryRequirements string  `json:"entryRequirements"`
	StartingSalary    float64 `json:"startingSalary"`
}

// CareerSuggestion is a career route matched to the interest field.
type CareerSuggestion struct {
	Title       string  `json:"title"`
	EntrySalary float64 `json:"entrySalary"`
	Year5Salary float64 `json:"year5Salary"`
	GrowthRate  float64 `json:"growthRate"`
	Demand      string  `json:"demand"`
}
