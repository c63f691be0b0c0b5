package config

const (
	defaultServerPort = 8080

	defaultFormMaxSessions = 10000

	defaultRateLimitEventsPerSecond = 20.0
	defaultRateLimitBurst           = 40
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"form.session_ttl":      "30m",
		"form.cleanup_interval": "1m",
		"form.max_sessions":     defaultFormMaxSessions,
		"form.strip_markup":     false,
		"form.cookie_secure":    false,

		"rate_limit.events_per_second": defaultRateLimitEventsPerSecond,
		"rate_limit.burst":             defaultRateLimitBurst,
		"rate_limit.idle_ttl":          "10m",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "contact-form",
	}
}
