// internal/workers/infrastructure/build-report/models.go
package buildreport

import "pathfinder-workers/internal/models"

type Input struct {
	RequestID       string                           `json:"requestId"`
	User            models.UserContext               `json:"user"`
	QuizScores      models.TraitProfile              `json:"quizScores"`
	MergedScores    models.TraitProfile              `json:"mergedScores"`
	Interpretations []string                         `json:"interpretations"`
	Analysis        models.TextAnalysis              `json:"textAnalysis"`
	ProfileSummary  string                           `json:"profileSummary"`
	Pathway         string                           `json:"pathway"`
	FitScore        float64                          `json:"fitScore"`
	AllFitScores    map[string]float64               `json:"allFitScores"`
	Alternative     *models.AlternativeChoice        `json:"alternative,omitempty"`
	Reasoning       []string                         `json:"reasoning"`
	NextSteps       []string                         `json:"nextSteps"`
	Projections     []models.ROIRow                  `json:"roiProjections"`
	Outcomes        map[string]models.PathwayOutcome `json:"roiOutcomes"`
	Comparison      models.ComparisonSummary         `json:"roiComparison"`
	Programmes      []models.ProgrammeSuggestion     `json:"programmes"`
	Careers         []models.CareerSuggestion        `json:"careers"`
}

// Report is the assembled assessment result.
type Report struct {
	ReportID        string                           `json:"reportId"`
	UserName        string                           `json:"userName,omitempty"`
	Scores          models.TraitProfile              `json:"scores"`
	Interpretations []string                         `json:"interpretations,omitempty"`
	TextAnalysis    models.TextAnalysis              `json:"textAnalysis"`
	ProfileSummary  string                           `json:"profileSummary,omitempty"`
	Recommendation  Recommendation                   `json:"recommendation"`
	Projections     []models.ROIRow                  `json:"roiProjections"`
	Outcomes        map[string]models.PathwayOutcome `json:"roiOutcomes"`
	Comparison      models.ComparisonSummary         `json:"roiComparison"`
	Programmes      []models.ProgrammeSuggestion     `json:"programmes,omitempty"`
	Careers         []models.CareerSuggestion        `json:"careers,omitempty"`
}

type Recommendation struct {
	Pathway      string                    `json:"pathway"`
	FitScore     float64                   `json:"fitScore"`
	AllFitScores map[string]float64        `json:"allFitScores"`
	Alternative  *models.AlternativeChoice `json:"alternative,omitempty"`
	Reasoning    []string                  `json:"reasoning"`
	NextSteps    []string                  `json:"nextSteps"`
}

type Metadata struct {
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Cached    bool   `json:"cached"`
}

type Output struct {
	RequestID string   `json:"requestId"`
	Status    string   `json:"status"`
	Report    Report   `json:"report"`
	Metadata  Metadata `json:"metadata"`
}
