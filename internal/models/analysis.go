// internal/models/analysis.go
package models

// TextAnalysis is the result of keyword analysis over free text or extracted CV
// content. Categories with zero matches are absent from Scores and
// KeywordsFound, never zero-filled.
type TextAnalysis struct {
	Scores             map[string]float64 `json:"scores"`
	KeywordsFound      map[string][]string `json:"keywordsFound"`
	Insights           []CategoryInsight   `json:"insights"`
	TotalMatches       int                 `json:"totalMatches"`
	InsufficientSignal bool                `json:"insufficientSignal"`
}

// Empty reports whether the analysis carries no signal at all. Merging an empty
// analysis into a trait profile is a no-op.
func (a TextAnalysis) Empty() bool {
	return a.TotalMatches == 0
}

// CategoryInsight summarizes one matched keyword category.
type CategoryInsight struct {
	Category string   `json:"category"`
	Level    string   `json:"level"` // "strong", "moderate", "some"
	Score    float64  `json:"score"`
	Examples []string `json:"examples"` // first 3 matched keywords
}
