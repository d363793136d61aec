package app

// Config holds all the necessary configuration for an App instance to run.
// The expansion itself is driven entirely by the job environment; only the
// logging surface is configurable.
type Config struct {
	LogFormat string
	LogLevel  string
}

// NewConfig normalizes a Config, filling in defaults for unset fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// Value validation lives in the CLI layer, which owns the allowed sets.

	return &cfg, nil
}
