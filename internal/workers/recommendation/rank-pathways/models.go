// internal/workers/recommendation/rank-pathways/models.go
package rankpathways

import "pathfinder-workers/internal/models"

type Input struct {
	RequestID string              `json:"requestId"`
	Scores    models.TraitProfile `json:"mergedScores"`
	User      models.UserContext  `json:"user"`
}

type Output struct {
	Pathway      string                    `json:"pathway"`
	FitScore     float64                   `json:"fitScore"`
	AllFitScores map[string]float64        `json:"allFitScores"`
	Alternative  *models.AlternativeChoice `json:"alternative,omitempty"`
	Reasoning    []string                  `json:"reasoning"`
	NextSteps    []string                  `json:"nextSteps"`
}
