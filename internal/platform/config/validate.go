package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Form.validate(),
		c.RateLimit.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (f *FormConfig) validate() error {
	var errs []error

	if f.SessionTTL <= 0 {
		errs = append(errs, errors.New("form.session_ttl must be positive"))
	}
	if f.CleanupInterval < 0 {
		errs = append(errs, errors.New("form.cleanup_interval must not be negative"))
	}
	if f.MaxSessions < 0 {
		errs = append(errs, fmt.Errorf("form.max_sessions must be >= 0, got %d", f.MaxSessions))
	}

	return errors.Join(errs...)
}

func (r *RateLimitConfig) validate() error {
	if r.EventsPerSecond == 0 {
		return nil
	}

	var errs []error

	if r.EventsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("rate_limit.events_per_second must not be negative, got %f", r.EventsPerSecond))
	}
	if r.Burst < 1 {
		errs = append(errs, fmt.Errorf("rate_limit.burst must be >= 1 when limiting is enabled, got %d", r.Burst))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty when telemetry is enabled"))
	}

	return errors.Join(errs...)
}
