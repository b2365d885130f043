package api

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Config holds the backend connection settings.
type Config struct {
	// BaseURL is the API root, including the /api prefix.
	BaseURL string

	// ReadTimeout bounds plain reads (attempt fetch, listing, export).
	ReadTimeout time.Duration

	// SubmitTimeout bounds grading submissions and retry generation,
	// which may involve server-side model work and run for minutes.
	SubmitTimeout time.Duration

	// Model selects the generation model for retry problem sets.
	Model string

	// DemoPollInterval is how often the demo-mode flag is refreshed.
	DemoPollInterval time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:          "http://localhost:8000/api",
		ReadTimeout:      15 * time.Second,
		SubmitTimeout:    180 * time.Second,
		Model:            "gpt-4o-mini",
		DemoPollInterval: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ECONQUIZ_API_BASE"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("ECONQUIZ_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ReadTimeout = d
		}
	}
	if v := os.Getenv("ECONQUIZ_SUBMIT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SubmitTimeout = d
		}
	}
	if v := os.Getenv("ECONQUIZ_MODEL"); v != "" {
		cfg.Model = v
	}

	return cfg
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API base URL: %q", c.BaseURL)
	}
	if c.ReadTimeout <= 0 || c.SubmitTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}
