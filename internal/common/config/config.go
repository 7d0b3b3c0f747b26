// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig               `mapstructure:"app"`
	Camunda    CamundaConfig           `mapstructure:"camunda"`
	Database   DatabaseConfig          `mapstructure:"database"`
	Workers    map[string]WorkerConfig `mapstructure:"workers"`
	Assessment AssessmentConfig        `mapstructure:"assessment"`
	Registry   RegistryConfig          `mapstructure:"registry"`
	Logging    LoggingConfig           `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"`     // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"` // For error handling
}

// AssessmentConfig holds tunables for the scoring pipeline. The numeric values
// are fixed by the assessment model; exposing them here keeps them visible in
// one place, not because operators are expected to change them.
type AssessmentConfig struct {
	MinTextLength    int     `mapstructure:"min_text_length"`    // below this, text analysis short-circuits
	QuizWeight       float64 `mapstructure:"quiz_weight"`        // questionnaire share in the score merge
	TextWeight       float64 `mapstructure:"text_weight"`        // free-text share in the score merge
	ReportCacheTTL   int     `mapstructure:"report_cache_ttl"`   // seconds
	MaxProgrammes    int     `mapstructure:"max_programmes"`     // cap on programme suggestions per pathway
	MaxCareers       int     `mapstructure:"max_careers"`        // cap on career suggestions per field
	LowROIThreshold  float64 `mapstructure:"low_roi_threshold"`  // roi multiple below this warns
	ProjectionYears  int     `mapstructure:"projection_years"`   // fixed 5-year horizon
}

// RegistryConfig points at the activity registry document.
type RegistryConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
