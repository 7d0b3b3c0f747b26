// internal/workers/assessment/validate-assessment-input/config.go
package validateassessmentinput

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
