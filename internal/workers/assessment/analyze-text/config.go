// internal/workers/assessment/analyze-text/config.go
package analyzetext

import "time"

type Config struct {
	// Inputs shorter than this after trimming carry no usable signal.
	MinTextLength int
	Timeout       time.Duration
}

func LoadConfig() *Config {
	return &Config{
		MinTextLength: 10,
		Timeout:       10 * time.Second,
	}
}
