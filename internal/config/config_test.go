package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")

	_, err := Load()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "abc123")
	t.Setenv("MCP_TRANSPORT", "")
	t.Setenv("OPENWEATHER_API_BASE", "")
	t.Setenv("OPENWEATHER_TIMEOUT_SEC", "")
	t.Setenv("LOG_LEVEL", "")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Weather.APIKey != "abc123" {
		t.Fatalf("APIKey = %q", c.Weather.APIKey)
	}
	if c.Transport != "stdio" {
		t.Fatalf("Transport = %q, want stdio", c.Transport)
	}
	if c.Weather.Timeout != 30*time.Second {
		t.Fatalf("Timeout = %v, want 30s", c.Weather.Timeout)
	}
	if c.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", c.LogLevel)
	}
	if c.Weather.BaseURL != "https://api.openweathermap.org/data/2.5" {
		t.Fatalf("BaseURL = %q", c.Weather.BaseURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "k")
	t.Setenv("MCP_TRANSPORT", "HTTP")
	t.Setenv("OPENWEATHER_TIMEOUT_SEC", "5")
	t.Setenv("CALL_LOG_RETENTION_DAYS", "not-a-number")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Transport != "http" {
		t.Fatalf("Transport = %q", c.Transport)
	}
	if c.Weather.Timeout != 5*time.Second {
		t.Fatalf("Timeout = %v", c.Weather.Timeout)
	}
	if c.MySQL.RetentionDays != 30 {
		t.Fatalf("RetentionDays = %d, want default 30", c.MySQL.RetentionDays)
	}
}

func TestLoadRejectsUnknownTransport(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "k")
	t.Setenv("MCP_TRANSPORT", "grpc")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown transport")
	}
}
