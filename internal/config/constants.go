package config

import "time"

const (
	envPort             = "PORT"
	envDataDir          = "DATA_DIR"
	envAdminToken       = "ADMIN_TOKEN"
	envCacheSize        = "CACHE_SIZE"
	envCORSOrigins      = "CORS_ALLOWED_ORIGINS"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"
	envLogFile          = "LOG_FILE"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envKeepAliveURL     = "KEEPALIVE_URL"
	envRenderURL        = "RENDER_EXTERNAL_URL"
	envKeepAliveEvery   = "KEEPALIVE_INTERVAL"
	envKeepAliveInitial = "KEEPALIVE_INITIAL_DELAY"

	defaultPort        = "8080"
	defaultDataDir     = "data/players"
	defaultCacheSize   = 512
	defaultCORSOrigins = "*"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"
	defaultServiceName = "lineup-service"
	// Free hosting tiers spin down after roughly 15 idle minutes.
	defaultKeepAliveInterval = 5 * Duration(time.Minute)
	defaultKeepAliveInitial  = 1 * Duration(time.Minute)
	keepAliveHealthPath      = "/api/health"
)
