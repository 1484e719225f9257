// internal/util/logjson.go
// Structured log payload (satu baris JSON per event, ke stderr)

package util

import (
	"encoding/json"
	"log"
	"strings"
	"sync/atomic"
	"time"
)

var levelRank = map[string]int32{"debug": 0, "info": 1, "warn": 2, "error": 3}

var minLevel atomic.Int32

func init() { minLevel.Store(levelRank["info"]) }

// SetLogLevel mengatur level minimum event JSON (LOG_LEVEL).
// Nilai tidak dikenal diperlakukan sebagai info.
func SetLogLevel(level string) {
	r, ok := levelRank[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		r = levelRank["info"]
	}
	minLevel.Store(r)
}

func enabled(level string) bool {
	r, ok := levelRank[level]
	if !ok {
		return true
	}
	return r >= minLevel.Load()
}

type LogEvent struct {
	At              string `json:"@t,omitempty"`         // RFC3339 timestamp
	Level           string `json:"level,omitempty"`      // info|warn|error
	Event           string `json:"event,omitempty"`      // mcp.call | mcp.route
	RequestID       string `json:"request_id,omitempty"` // X-Request-ID / call id
	Tool            string `json:"tool,omitempty"`
	Location        string `json:"location,omitempty"`
	Question        string `json:"question,omitempty"`
	DecisionBy      string `json:"decision_by,omitempty"` // explicit|keyword|llm|default|explicit-plan
	Outcome         string `json:"outcome,omitempty"`     // ok|unavailable|fallback
	CatalogCount    int    `json:"catalog_count,omitempty"`
	RegisteredCount int    `json:"registered_count,omitempty"`
	HasAPIKey       bool   `json:"has_api_key,omitempty"`
	DurationMS      int64  `json:"duration_ms"`
	Error           string `json:"error,omitempty"`
}

func LogJSON(l LogEvent) {
	l.At = time.Now().Format(time.RFC3339Nano)
	if l.Level == "" {
		l.Level = "info"
	}
	if !enabled(l.Level) {
		return
	}
	b, _ := json.Marshal(l)
	log.Println(string(b))
}
