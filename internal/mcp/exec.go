// internal/mcp/exec.go
package mcp

import (
	"context"
	"encoding/json"
	"strings"
)

type ExecResult struct {
	Route Route  `json:"route"`
	Data  string `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// ExecuteRoutes menjalankan semua rute secara berurutan lewat registry.
// Kegagalan satu rute tidak menghentikan rute lain.
func ExecuteRoutes(ctx context.Context, reg *Registry, routes []Route) []ExecResult {
	out := make([]ExecResult, 0, len(routes))
	for _, r := range routes {
		args := r.Params
		if isJSONNullOrEmpty(args) {
			args = json.RawMessage("{}")
		}
		text, err := reg.Invoke(ctx, strings.TrimSpace(r.Tool), args)
		if err != nil {
			out = append(out, ExecResult{Route: r, Error: err.Error()})
			continue
		}
		out = append(out, ExecResult{Route: r, Data: text})
	}
	return out
}

// Util: cek apakah Params = null / {} / whitespace
func isJSONNullOrEmpty(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null" || s == "{}"
}
