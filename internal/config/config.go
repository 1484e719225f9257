// internal/config/config.go
// Loader konfigurasi dari environment variables
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// ErrMissingAPIKey: OPENWEATHER_API_KEY wajib ada, proses tidak boleh start tanpanya.
var ErrMissingAPIKey = errors.New("OPENWEATHER_API_KEY environment variable is required")

type Config struct {
	AppName   string
	AppPort   string
	MCPPort   string
	Transport string // stdio | http
	LogLevel  string // debug|info|warn|error, untuk event JSON
	APIKey    string // X-API-Key untuk /mcp/*; kosong = tanpa auth

	Weather struct {
		APIKey  string
		BaseURL string
		Timeout time.Duration
	}

	MySQL struct {
		DSN           string
		MaxOpen       int
		MaxIdle       int
		RetentionDays int
	}

	LLM struct {
		APIKey  string
		APIBase string
		Model   string
	}

	Admin struct {
		User      string
		PassHash  string
		JWTSecret string
	}
}

func Load() (*Config, error) {
	c := &Config{}
	c.AppName = getEnv("APP_NAME", "weather-mcp")
	c.AppPort = getEnv("APP_PORT", "8080")
	c.MCPPort = getEnv("MCP_PORT", "8090")
	c.Transport = strings.ToLower(getEnv("MCP_TRANSPORT", "stdio"))
	c.LogLevel = getEnv("LOG_LEVEL", "info")
	c.APIKey = getEnv("API_KEY", "")

	c.Weather.APIKey = strings.TrimSpace(os.Getenv("OPENWEATHER_API_KEY"))
	c.Weather.BaseURL = getEnv("OPENWEATHER_API_BASE", "https://api.openweathermap.org/data/2.5")
	c.Weather.Timeout = time.Duration(getEnvInt("OPENWEATHER_TIMEOUT_SEC", 30)) * time.Second

	c.MySQL.DSN = getEnv("DB_DSN", "")
	c.MySQL.MaxOpen = getEnvInt("MYSQL_MAX_OPEN_CONNS", 10)
	c.MySQL.MaxIdle = getEnvInt("MYSQL_MAX_IDLE_CONNS", 5)
	c.MySQL.RetentionDays = getEnvInt("CALL_LOG_RETENTION_DAYS", 30)

	// LLM / OpenAI (opsional, hanya untuk memilih tool dari pertanyaan bebas)
	c.LLM.APIKey = getEnv("OPENAI_API_KEY", "")
	c.LLM.APIBase = getEnv("OPENAI_API_BASE", "https://api.openai.com/v1")
	c.LLM.Model = getEnv("OPENAI_MODEL", "gpt-4o-mini")

	c.Admin.User = getEnv("ADMIN_USER", "")
	c.Admin.PassHash = getEnv("ADMIN_PASS_HASH", "")
	c.Admin.JWTSecret = getEnv("ADMIN_JWT_SECRET", "")

	if c.Weather.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if c.Transport != "stdio" && c.Transport != "http" {
		return nil, fmt.Errorf("MCP_TRANSPORT must be stdio or http, got %q", c.Transport)
	}
	if c.LLM.APIKey == "" {
		log.Println("[WARN] OPENAI_API_KEY is not set, LLM tool chooser disabled")
	}

	return c, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		_, err := fmt.Sscanf(v, "%d", &i)
		if err == nil && i > 0 {
			return i
		}
	}
	return def
}
