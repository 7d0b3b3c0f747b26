// internal/workers/assessment/score-psychometric/models.go
package scorepsychometric

import "pathfinder-workers/internal/models"

type Input struct {
	RequestID string             `json:"requestId"`
	Responses models.ResponseSet `json:"responses"`
}

type Output struct {
	QuizScores      models.TraitProfile `json:"quizScores"`
	Interpretations []string            `json:"interpretations"`
}
