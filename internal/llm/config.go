package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the completion client.
type Config struct {
	Enabled   bool
	LogCalls  bool
	Endpoint  string
	Model     string
	APIKey    string
	TimeoutMs int
}

// DefaultConfig returns a Config with sensible defaults.
// The external call is disabled until an API key is configured.
func DefaultConfig() Config {
	return Config{
		Enabled:   false,
		LogCalls:  false,
		Endpoint:  "https://generativelanguage.googleapis.com",
		Model:     "gemini-2.0-flash",
		TimeoutMs: 15000,
	}
}

// LoadConfig reads completion-client configuration from environment
// variables, falling back to defaults for any unset values. Setting an
// API key enables the client unless ASTRAL_LLM_ENABLED says otherwise.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ASTRAL_API_KEY"); v != "" {
		cfg.APIKey = v
		cfg.Enabled = true
	}
	if v := os.Getenv("ASTRAL_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ASTRAL_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ASTRAL_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("ASTRAL_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ASTRAL_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	return cfg
}
