package config

// Default configuration values
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "INFO"
	DefaultLogFormat   = "text"
	DefaultCatalogPath = "configs/items.json"

	DefaultGeminiModel            = "gemini-2.5-pro"
	DefaultAugmentTimeoutMS       = 10000
	DefaultAugmentCacheSize       = 256
	DefaultAugmentCacheTTLSeconds = 300
)
