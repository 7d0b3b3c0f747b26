// internal/workers/assessment/merge-scores/config.go
package mergescores

import "time"

type Config struct {
	// QuizWeight and TextWeight must sum to 1.0; the questionnaire stays primary.
	QuizWeight float64
	TextWeight float64
	Timeout    time.Duration
}

func LoadConfig() *Config {
	return &Config{
		QuizWeight: 0.7,
		TextWeight: 0.3,
		Timeout:    10 * time.Second,
	}
}
