package config

import "strings"

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	DataDir     string
	AdminToken  string
	CacheSize   int
	CORSOrigins []string
	Log         LogConfig
	Metrics     MetricsConfig
	KeepAlive   KeepAliveConfig
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		DataDir:     envOrDefault(envDataDir, defaultDataDir),
		AdminToken:  strings.TrimSpace(envOrDefault(envAdminToken, "")),
		CacheSize:   nonNegativeIntEnvOrDefault(envCacheSize, defaultCacheSize),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
			File:   envOrDefault(envLogFile, ""),
		},
		Metrics:   loadMetrics(),
		KeepAlive: loadKeepAlive(),
	}
}
