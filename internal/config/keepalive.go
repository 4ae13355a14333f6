package config

import (
	"strings"
	"time"
)

// KeepAliveConfig controls the periodic self ping. An empty URL disables it.
type KeepAliveConfig struct {
	URL          string
	Interval     time.Duration
	InitialDelay time.Duration
}

// Enabled reports whether a target URL is configured.
func (c KeepAliveConfig) Enabled() bool {
	return c.URL != ""
}

func loadKeepAlive() KeepAliveConfig {
	return KeepAliveConfig{
		URL:          keepAliveURL(),
		Interval:     durationEnvOrDefault(envKeepAliveEvery, defaultKeepAliveInterval),
		InitialDelay: durationEnvOrDefault(envKeepAliveInitial, defaultKeepAliveInitial),
	}
}

// keepAliveURL prefers an explicit target; otherwise it pings the health
// endpoint of the externally visible host name the platform provides.
func keepAliveURL() string {
	if explicit := strings.TrimSpace(envOrDefault(envKeepAliveURL, "")); explicit != "" {
		return explicit
	}
	base := strings.TrimRight(strings.TrimSpace(envOrDefault(envRenderURL, "")), "/")
	if base == "" {
		return ""
	}
	return base + keepAliveHealthPath
}
