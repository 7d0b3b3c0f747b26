// internal/workers/infrastructure/build-report/config.go
package buildreport

import "time"

type Config struct {
	// Rendered reports are cached per request id so a refresh within the
	// same session reuses them. This is session convenience, not storage.
	CacheTTL time.Duration
	Version  string
	Timeout  time.Duration
}

func LoadConfig() *Config {
	return &Config{
		CacheTTL: 30 * time.Minute,
		Version:  "1.0",
		Timeout:  10 * time.Second,
	}
}
