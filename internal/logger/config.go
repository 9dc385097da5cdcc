package logger

import (
	"log/slog"
	"strings"
)

// Default service identity for log attributes
const DefaultServiceName = "garden-advisor"

// Config represents logger configuration
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
}

// NewConfig creates a config from explicit values
func NewConfig(level, format string) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: DefaultServiceName,
	}
}

// SlogLevel converts the string level to slog.Level
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON returns true if the configured format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == "json"
}
