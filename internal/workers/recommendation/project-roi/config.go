// internal/workers/recommendation/project-roi/config.go
package projectroi

import "time"

type Config struct {
	// ROI multiples below this threshold trigger a low-return warning.
	LowROIThreshold float64
	Timeout         time.Duration
}

func LoadConfig() *Config {
	return &Config{
		LowROIThreshold: 1.5,
		Timeout:         10 * time.Second,
	}
}
