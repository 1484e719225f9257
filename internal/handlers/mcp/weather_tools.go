// internal/handlers/mcp/weather_tools.go
// MCP Tools: get_alerts & get_forecast (dependensi di-inject dari app)

package mcp

import (
	"context"
	"log"
	"time"

	mysqlrepo "weather-mcp/internal/repositories/mysql"
	"weather-mcp/internal/util"
	"weather-mcp/pkg/weather"
)

const (
	ToolGetAlerts   = "get_alerts"
	ToolGetForecast = "get_forecast"

	outcomeOK          = "ok"
	outcomeUnavailable = "unavailable"
	outcomeFallback    = "fallback"
)

// WeatherSource dipenuhi oleh *weather.Client.
type WeatherSource interface {
	Current(ctx context.Context, location string) weather.Result
	Forecast(ctx context.Context, location string) weather.Result
}

// CallRecorder dipenuhi oleh *mysqlrepo.CallRepo.
type CallRecorder interface {
	Insert(ctx context.Context, c mysqlrepo.CallRecord) error
}

// WeatherTools tidak punya state mutable; aman dipanggil bersamaan.
type WeatherTools struct {
	Weather WeatherSource
	Calls   CallRecorder // nil = audit log nonaktif
	Clock   util.Clock
}

func (t *WeatherTools) GetAlerts(ctx context.Context, location string) string {
	start := t.now()
	text, outcome := FormatAlerts(t.Weather.Current(ctx, location))
	t.record(ctx, ToolGetAlerts, location, outcome, start)
	return text
}

func (t *WeatherTools) GetForecast(ctx context.Context, location string) string {
	start := t.now()
	text, outcome := FormatForecast(t.Weather.Forecast(ctx, location))
	t.record(ctx, ToolGetForecast, location, outcome, start)
	return text
}

func (t *WeatherTools) now() time.Time {
	if t.Clock == nil {
		return time.Now()
	}
	return t.Clock.Now()
}

// record menulis log JSON dan (jika ada) baris audit ke MySQL.
// Gagal simpan audit hanya di-log; hasil tool tidak terpengaruh.
func (t *WeatherTools) record(ctx context.Context, tool, location, outcome string, start time.Time) {
	end := t.now()
	rec := mysqlrepo.CallRecord{
		ID:         util.NewID(),
		Tool:       tool,
		Location:   location,
		Outcome:    outcome,
		DurationMS: end.Sub(start).Milliseconds(),
		CreatedAt:  end,
	}

	util.LogJSON(util.LogEvent{
		Event:      "mcp.call",
		RequestID:  rec.ID,
		Tool:       tool,
		Location:   location,
		Outcome:    outcome,
		DurationMS: rec.DurationMS,
	})

	if t.Calls == nil {
		return
	}
	// context terpisah: audit tetap tercatat walau ctx pemanggil sudah selesai
	actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := t.Calls.Insert(actx, rec); err != nil {
		log.Printf("[WARN] audit tool_call %s: %v", tool, err)
	}
}
