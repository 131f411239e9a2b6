package gemini

import "time"

// Config for the Gemini-backed extractor.
type Config struct {
	Model  string
	APIKey string

	// AttemptTimeout bounds each individual model call.
	AttemptTimeout time.Duration
	// MaxAttempts bounds retries for transport failures. Parse problems
	// are never retried; they degrade to the fallback structure.
	MaxAttempts int
	// RetryBackoff is the base wait between attempts (linear).
	RetryBackoff time.Duration
}

func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = "gemini-1.5-flash"
	}
	if c.AttemptTimeout <= 0 {
		c.AttemptTimeout = 90 * time.Second
	}
	if c.MaxAttempts < 1 {
		c.MaxAttempts = 1
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = 5 * time.Second
	}
	return c
}
