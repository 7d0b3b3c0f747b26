// internal/workers/assessment/merge-scores/models.go
package mergescores

import "pathfinder-workers/internal/models"

type Input struct {
	RequestID  string              `json:"requestId"`
	QuizScores models.TraitProfile `json:"quizScores"`
	Analysis   models.TextAnalysis `json:"textAnalysis"`
}

type Output struct {
	MergedScores models.TraitProfile `json:"mergedScores"`
}
