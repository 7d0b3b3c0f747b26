// internal/workers/assessment/validate-assessment-input/models.go
package validateassessmentinput

import "pathfinder-workers/internal/models"

type Input struct {
	RequestID string             `json:"requestId"`
	Responses models.ResponseSet `json:"responses"`
	User      models.UserContext `json:"user"`
}

type Output struct {
	Valid     bool     `json:"valid"`
	RequestID string   `json:"requestId"`
	Warnings  []string `json:"validationWarnings,omitempty"`
}
