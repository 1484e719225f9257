// internal/handlers/http/health_handler.go
// Handler sederhana untuk health & readiness check

package http

import (
	"encoding/json"
	"net/http"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// ReadyHandler: 503 bila dependensi wajib ("weather") belum siap.
// Dependensi opsional (call_log) hanya dilaporkan.
func ReadyHandler(status func() map[string]bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := status()
		code := http.StatusOK
		state := "ready"
		if !st["weather"] {
			code = http.StatusServiceUnavailable
			state = "not_ready"
		}
		writeJSON(w, code, map[string]any{"status": state, "deps": st})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
