package agent

import (
	"os"
	"time"
)

const (
	defaultBaseURL = "https://quiz.classpulse.dev/v1/agent"
	defaultAuxURL  = "https://quiz.classpulse.dev/v1/ai-quiz"
)

// Config holds the quiz service endpoints and transport settings.
type Config struct {
	// BaseURL is the session API root (the /v1/agent base path).
	BaseURL string

	// AuxBaseURL is the subtopic-suggestion API root (the /v1/ai-quiz base path).
	AuxBaseURL string

	// Timeout is the maximum duration for a single request. Default: 30s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:    defaultBaseURL,
		AuxBaseURL: defaultAuxURL,
		Timeout:    30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("CLASSPULSE_API_BASE"); u != "" {
		cfg.BaseURL = u
	}
	if u := os.Getenv("CLASSPULSE_AIQUIZ_BASE"); u != "" {
		cfg.AuxBaseURL = u
	}
	if d := os.Getenv("CLASSPULSE_API_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			cfg.Timeout = parsed
		}
	}

	return cfg
}
