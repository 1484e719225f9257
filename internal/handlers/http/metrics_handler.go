// internal/handlers/http/metrics_handler.go
// Handler untuk metrics Prometheus format sederhana

package http

import (
	"fmt"
	"net/http"
	"sort"
)

// MetricsHandler menulis app_up dan counter pemanggilan per tool.
func MetricsHandler(stats func() map[string]int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		fmt.Fprintf(w, "# HELP app_up 1 if the app is up\n# TYPE app_up gauge\napp_up 1\n")

		st := stats()
		names := make([]string, 0, len(st))
		for k := range st {
			names = append(names, k)
		}
		sort.Strings(names)

		fmt.Fprintf(w, "# HELP mcp_tool_calls_total Tool invocations since start\n# TYPE mcp_tool_calls_total counter\n")
		for _, n := range names {
			fmt.Fprintf(w, "mcp_tool_calls_total{tool=%q} %d\n", n, st[n])
		}
	}
}
