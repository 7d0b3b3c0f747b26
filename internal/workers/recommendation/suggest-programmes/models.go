// internal/workers/recommendation/suggest-programmes/models.go
package suggestprogrammes

import "pathfinder-workers/internal/models"

type Input struct {
	RequestID string             `json:"requestId"`
	Pathway   string             `json:"pathway"`
	User      models.UserContext `json:"user"`
}

type Output struct {
	Programmes []models.ProgrammeSuggestion `json:"programmes"`
	Careers    []models.CareerSuggestion    `json:"careers"`
}
