// internal/models/assessment.go
package models

import "math"

// TraitDimensions lists the four psychometric dimensions in canonical order.
var TraitDimensions = []string{"grit", "hands_on", "structure", "risk_tolerance"}

// TraitProfile is the four-dimension psychometric score. Every value is clamped
// to [0, 10] and carries one decimal of precision. Once a profile reaches the
// pathway ranker it is treated as immutable.
type TraitProfile struct {
	Grit          float64 `json:"grit"`
	HandsOn       float64 `json:"hands_on"`
	Structure     float64 `json:"structure"`
	RiskTolerance float64 `json:"risk_tolerance"`
}

// Dimension returns the value for a named dimension.
func (p TraitProfile) Dimension(name string) (float64, bool) {
	switch name {
	case "grit":
		return p.Grit, true
	case "hands_on":
		return p.HandsOn, true
	case "structure":
		return p.Structure, true
	case "risk_tolerance":
		return p.RiskTolerance, true
	}
	return 0, false
}

// WithDimension returns a copy with one named dimension replaced.
func (p TraitProfile) WithDimension(name string, value float64) TraitProfile {
	switch name {
	case "grit":
		p.Grit = value
	case "hands_on":
		p.HandsOn = value
	case "structure":
		p.Structure = value
	case "risk_tolerance":
		p.RiskTolerance = value
	}
	return p
}

// ResponseSet maps question id to the selected option letter (A-D).
type ResponseSet map[string]string

// UserContext carries the financial and interest context collected alongside
// the questionnaire.
type UserContext struct {
	Name          string   `json:"name"`
	Age           int      `json:"age,omitempty"`
	Budget        float64  `json:"budget"`
	CurrentIncome float64  `json:"currentIncome"`
	Interests     []string `json:"interests"`
	TargetCountry string   `json:"targetCountry"`
}

// PrimaryField returns the first interest, the one the ROI projector uses.
func (u UserContext) PrimaryField() string {
	if len(u.Interests) == 0 {
		return ""
	}
	return u.Interests[0]
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
