package config_test

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/contact-form-service/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Form.CookieSecure {
		t.Error("Form.CookieSecure = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
	if !cfg.Form.StripMarkup {
		t.Error("Form.StripMarkup = false, want true for prod")
	}
	if !cfg.Form.CookieSecure {
		t.Error("Form.CookieSecure = false, want true for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Form.SessionTTL != 30*time.Minute {
		t.Errorf("Form.SessionTTL = %v, want 30m (from base)", cfg.Form.SessionTTL)
	}
	if cfg.RateLimit.Burst != 40 {
		t.Errorf("RateLimit.Burst = %d, want 40 (from base)", cfg.RateLimit.Burst)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// rate_limit.idle_ttl appears in no YAML file.
	if cfg.RateLimit.IdleTTL != 10*time.Minute {
		t.Errorf("RateLimit.IdleTTL = %v, want 10m (from defaults)", cfg.RateLimit.IdleTTL)
	}
	if cfg.Telemetry.ServiceName != "contact-form" {
		t.Errorf("Telemetry.ServiceName = %q, want \"contact-form\" (from defaults)", cfg.Telemetry.ServiceName)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_FORM_SESSION_TTL", "5m")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 5 * time.Minute
	if cfg.Form.SessionTTL != want {
		t.Errorf("Form.SessionTTL = %v, want %v (env override)", cfg.Form.SessionTTL, want)
	}
}

func TestLoad_EnvOverrideSnakeCaseSection(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_RATE_LIMIT_EVENTS_PER_SECOND", "3.5")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.RateLimit.EventsPerSecond != 3.5 {
		t.Errorf("RateLimit.EventsPerSecond = %v, want 3.5 (env override)", cfg.RateLimit.EventsPerSecond)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_InvalidProfileName(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `a\b`} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_NonPositiveSessionTTL(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Form.SessionTTL = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for session_ttl=0")
	}
}

func TestValidate_RateLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rps     float64
		burst   int
		wantErr bool
	}{
		{name: "disabled ignores burst", rps: 0, burst: 0, wantErr: false},
		{name: "enabled with burst", rps: 5, burst: 10, wantErr: false},
		{name: "enabled without burst", rps: 5, burst: 0, wantErr: true},
		{name: "negative rate", rps: -1, burst: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validBaseConfig()
			cfg.RateLimit.EventsPerSecond = tt.rps
			cfg.RateLimit.Burst = tt.burst

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Form: config.FormConfig{
			SessionTTL:      30 * time.Minute,
			CleanupInterval: time.Minute,
			MaxSessions:     10000,
		},
		RateLimit: config.RateLimitConfig{
			EventsPerSecond: 20,
			Burst:           40,
			IdleTTL:         10 * time.Minute,
		},
		Telemetry: config.TelemetryConfig{
			Enabled:     false,
			Exporter:    "stdout",
			ServiceName: "contact-form",
		},
	}
}
