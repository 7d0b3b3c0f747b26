// internal/workers/recommendation/rank-pathways/config.go
package rankpathways

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
