// internal/workers/recommendation/project-roi/models.go
package projectroi

import "pathfinder-workers/internal/models"

type Input struct {
	RequestID string             `json:"requestId"`
	User      models.UserContext `json:"user"`
}

type Output struct {
	Projections []models.ROIRow                  `json:"roiProjections"`
	Outcomes    map[string]models.PathwayOutcome `json:"roiOutcomes"`
	Comparison  models.ComparisonSummary         `json:"roiComparison"`
}
