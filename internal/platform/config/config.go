// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Form      FormConfig      `koanf:"form"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// FormConfig holds contact form session settings.
type FormConfig struct {
	SessionTTL      time.Duration `koanf:"session_ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
	MaxSessions     int           `koanf:"max_sessions"`
	StripMarkup     bool          `koanf:"strip_markup"`
	CookieSecure    bool          `koanf:"cookie_secure"`
}

// RateLimitConfig holds per-client form event limits. A zero
// EventsPerSecond disables limiting.
type RateLimitConfig struct {
	EventsPerSecond float64       `koanf:"events_per_second"`
	Burst           int           `koanf:"burst"`
	IdleTTL         time.Duration `koanf:"idle_ttl"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
