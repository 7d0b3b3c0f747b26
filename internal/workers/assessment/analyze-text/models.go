// internal/workers/assessment/analyze-text/models.go
package analyzetext

import "pathfinder-workers/internal/models"

type Input struct {
	RequestID string `json:"requestId"`
	Text      string `json:"text"`
}

type Output struct {
	Analysis       models.TextAnalysis `json:"textAnalysis"`
	ProfileSummary string              `json:"profileSummary"`
}
