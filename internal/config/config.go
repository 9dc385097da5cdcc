package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	CatalogPath string

	// Augmentation gateway (optional; empty key disables it)
	GeminiAPIKey     string
	GeminiModel      string
	AugmentTimeout   time.Duration
	AugmentCacheSize int
	AugmentCacheTTL  time.Duration
}

// Load loads the configuration from environment variables.
// A .env file is honored when present but never required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:    getEnv("LOG_FORMAT", DefaultLogFormat),
		CatalogPath:  getEnv("CATALOG_PATH", DefaultCatalogPath),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", DefaultGeminiModel),
	}

	port, err := getEnvInt("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	timeoutMS, err := getEnvInt("AUGMENT_TIMEOUT_MS", DefaultAugmentTimeoutMS)
	if err != nil {
		return nil, err
	}
	cfg.AugmentTimeout = time.Duration(timeoutMS) * time.Millisecond

	cacheSize, err := getEnvInt("AUGMENT_CACHE_SIZE", DefaultAugmentCacheSize)
	if err != nil {
		return nil, err
	}
	cfg.AugmentCacheSize = cacheSize

	cacheTTLSec, err := getEnvInt("AUGMENT_CACHE_TTL_SECONDS", DefaultAugmentCacheTTLSeconds)
	if err != nil {
		return nil, err
	}
	cfg.AugmentCacheTTL = time.Duration(cacheTTLSec) * time.Second

	return cfg, nil
}

// AugmentationEnabled reports whether the Gemini gateway is configured
func (c *Config) AugmentationEnabled() bool {
	return c.GeminiAPIKey != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default
func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return value, nil
}
