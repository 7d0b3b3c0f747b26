// internal/workers/recommendation/suggest-programmes/config.go
package suggestprogrammes

import "time"

type Config struct {
	MaxProgrammes int
	MaxCareers    int
	Timeout       time.Duration
}

func LoadConfig() *Config {
	return &Config{
		MaxProgrammes: 3,
		MaxCareers:    5,
		Timeout:       10 * time.Second,
	}
}
