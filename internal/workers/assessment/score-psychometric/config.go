// internal/workers/assessment/score-psychometric/config.go
package scorepsychometric

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
