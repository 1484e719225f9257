// internal/handlers/mcp/tool_args.go
// Adapter ToolFunc (argumen JSON) & HTTP untuk kedua tool

package mcp

import (
	"context"
	"encoding/json"
	"net/http"

	"weather-mcp/internal/util"
)

type locationArgs struct {
	Location *string `json:"location"`
}

// parseLocation: "location" wajib ada dan bertipe string; isinya tidak divalidasi.
func parseLocation(raw json.RawMessage) (string, error) {
	var a locationArgs
	if len(raw) == 0 {
		return "", util.BadInput("location is required")
	}
	if err := json.Unmarshal(raw, &a); err != nil {
		return "", util.BadInput("invalid arguments: " + err.Error())
	}
	if a.Location == nil {
		return "", util.BadInput("location is required")
	}
	return *a.Location, nil
}

// Tool mengembalikan fungsi bertanda tangan mcp.ToolFunc untuk nama tool.
func (t *WeatherTools) Tool(name string) func(context.Context, json.RawMessage) (string, error) {
	run := t.runner(name)
	return func(ctx context.Context, raw json.RawMessage) (string, error) {
		loc, err := parseLocation(raw)
		if err != nil {
			return "", err
		}
		return run(ctx, loc), nil
	}
}

func (t *WeatherTools) runner(name string) func(context.Context, string) string {
	switch name {
	case ToolGetAlerts:
		return t.GetAlerts
	case ToolGetForecast:
		return t.GetForecast
	}
	panic("mcp: unknown weather tool " + name)
}

type toolHTTPResponse struct {
	Tool     string `json:"tool"`
	Location string `json:"location"`
	Text     string `json:"text"`
}

// HTTPHandler: GET ?location=... atau POST {"location": "..."}.
func (t *WeatherTools) HTTPHandler(name string) http.HandlerFunc {
	run := t.runner(name)
	return func(w http.ResponseWriter, r *http.Request) {
		// sama dengan parseLocation: wajib ada, isi (termasuk "") diteruskan apa adanya
		var loc *string
		if q := r.URL.Query(); q.Has("location") {
			v := q.Get("location")
			loc = &v
		} else if r.Method == http.MethodPost {
			var a locationArgs
			if err := json.NewDecoder(r.Body).Decode(&a); err == nil {
				loc = a.Location
			}
		}
		if loc == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error":   "bad_input",
				"message": "location is required",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(toolHTTPResponse{
			Tool:     name,
			Location: *loc,
			Text:     run(r.Context(), *loc),
		})
	}
}
