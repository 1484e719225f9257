// internal/handlers/mcp/get_forecast.go
// MCP Tool: get_forecast - 5 entri pertama prakiraan 3 jam-an

package mcp

import (
	"strings"

	"weather-mcp/pkg/weather"
)

const (
	MsgForecastUnavailable = "Unable to fetch forecast data for this location."

	maxForecastEntries = 5
)

// FormatForecast mengubah respons /forecast jadi teks; outcome untuk log.
func FormatForecast(res weather.Result) (string, string) {
	fc, ok := weather.DecodeForecast(res)
	if !ok {
		return MsgForecastUnavailable, outcomeUnavailable
	}
	if fc.List == nil {
		return MsgForecastUnavailable, outcomeFallback
	}

	entries := *fc.List
	if len(entries) > maxForecastEntries {
		entries = entries[:maxForecastEntries]
	}
	if len(entries) == 0 {
		return MsgForecastUnavailable, outcomeFallback
	}

	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, formatForecastEntry(e))
	}
	return strings.Join(blocks, blockSeparator), outcomeOK
}

func formatForecastEntry(e weather.ForecastEntry) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(e.TimestampOr(weather.DefaultUnknown))
	b.WriteString(":\nTemperature: ")
	b.WriteString(e.TempOr(weather.DefaultUnknown))
	b.WriteString("°C\nConditions: ")
	b.WriteString(e.DescriptionOr(weather.DefaultDescription))
	b.WriteString("\nWind Speed: ")
	b.WriteString(e.WindSpeedOr(weather.DefaultUnknown))
	b.WriteString(" m/s\n")
	return b.String()
}
