package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfigDefaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.Auth.SessionTTL != 12*time.Hour {
		t.Errorf("Auth.SessionTTL = %v, want 12h", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.MonitorInterval != 30*time.Second {
		t.Errorf("Auth.MonitorInterval = %v, want 30s", cfg.Auth.MonitorInterval)
	}
	if !cfg.Auth.MonitorEnabled {
		t.Error("Auth.MonitorEnabled = false, want true")
	}
	if cfg.Backend.Timeout != 15*time.Second {
		t.Errorf("Backend.Timeout = %v, want 15s", cfg.Backend.Timeout)
	}
	if cfg.Redis.URI != "localhost:6379" {
		t.Errorf("Redis.URI = %q, want localhost:6379", cfg.Redis.URI)
	}
}

func TestAppConfigFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("BACKEND_BASE_URL", "https://backend.example.com/api/v1")
	t.Setenv("SESSION_MONITOR_INTERVAL", "45s")
	t.Setenv("REDIS_URI", "redis-primary:6379")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":9999" {
		t.Errorf("HTTP.Addr = %q, want :9999", cfg.HTTP.Addr)
	}
	if cfg.Backend.BaseURL != "https://backend.example.com/api/v1" {
		t.Errorf("Backend.BaseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Auth.MonitorInterval != 45*time.Second {
		t.Errorf("Auth.MonitorInterval = %v, want 45s", cfg.Auth.MonitorInterval)
	}
	if cfg.Redis.URI != "redis-primary:6379" {
		t.Errorf("Redis.URI = %q", cfg.Redis.URI)
	}
}

func TestSanitizeClamps(t *testing.T) {
	cfg := AppConfig{
		HTTP:    HTTPConfig{CompressionLevel: 42},
		Auth:    AuthConfig{SessionTTL: time.Second, MonitorInterval: time.Millisecond},
		Backend: BackendConfig{Timeout: time.Hour},
	}
	cfg.Sanitize()

	if cfg.HTTP.CompressionLevel != 9 {
		t.Errorf("CompressionLevel = %d, want 9", cfg.HTTP.CompressionLevel)
	}
	if cfg.Auth.SessionTTL != minSessionTTL {
		t.Errorf("SessionTTL = %v, want %v", cfg.Auth.SessionTTL, minSessionTTL)
	}
	if cfg.Auth.MonitorInterval != minMonitorInterval {
		t.Errorf("MonitorInterval = %v, want %v", cfg.Auth.MonitorInterval, minMonitorInterval)
	}
	if cfg.Backend.Timeout != maxBackendTimeout {
		t.Errorf("Backend.Timeout = %v, want %v", cfg.Backend.Timeout, maxBackendTimeout)
	}
}

func TestDetectDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if !cfg.IsDev {
		t.Error("IsDev = false, want true with NODE_ENV=development")
	}
}
