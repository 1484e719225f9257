// internal/handlers/mcp/get_alerts.go
// MCP Tool: get_alerts - "alert" disintesis dari kondisi cuaca saat ini
// (free tier OpenWeather tidak punya feed alert resmi)

package mcp

import (
	"strings"

	"weather-mcp/pkg/weather"
)

const (
	MsgAlertsUnavailable = "Unable to fetch weather data for this location."
	MsgNoAlertsList      = "No weather alerts for this location."
	MsgNoActiveAlerts    = "No active weather alerts for this location."

	blockSeparator = "\n---\n"
)

// severeConditions = kategori weather[].main yang dianggap alert.
var severeConditions = map[string]bool{
	"Thunderstorm": true,
	"Tornado":      true,
	"Hurricane":    true,
}

// FormatAlerts mengubah respons /weather jadi teks alert; outcome untuk log.
func FormatAlerts(res weather.Result) (string, string) {
	cur, ok := weather.DecodeCurrent(res)
	if !ok {
		return MsgAlertsUnavailable, outcomeUnavailable
	}
	if cur.Weather == nil {
		return MsgNoAlertsList, outcomeFallback
	}

	var alerts []string
	for _, c := range *cur.Weather {
		if !severeConditions[c.MainOr("")] {
			continue
		}
		alerts = append(alerts, formatAlert(c))
	}
	if len(alerts) == 0 {
		return MsgNoActiveAlerts, outcomeOK
	}
	return strings.Join(alerts, blockSeparator), outcomeOK
}

func formatAlert(c weather.Condition) string {
	return "\nSevere Weather Alert: " + c.MainOr(weather.DefaultUnknown) +
		"\nDescription: " + c.DescriptionOr(weather.DefaultDescription) + "\n"
}
