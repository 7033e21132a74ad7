package config

import (
	"log/slog"
	"os"
	"strings"
)

// Config holds process-level configuration read from the environment.
// Completion-client settings live in the llm package.
type Config struct {
	// Profile is a built-in profile name or a path to a profile YAML file.
	Profile string

	// DataDir optionally overrides the embedded reference data with
	// on-disk JSON documents, one <category>.json per category.
	DataDir string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values.
func Load() Config {
	return Config{
		Profile:  getEnv("ASTRAL_PROFILE", "astrobot"),
		DataDir:  os.Getenv("ASTRAL_DATA_DIR"),
		LogFile:  os.Getenv("ASTRAL_LOG_FILE"),
		LogLevel: parseLogLevel(getEnv("ASTRAL_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
