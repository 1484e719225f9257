// internal/server/router.go
// Router ringan (chi) untuk binary cmd/mcp-router.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"weather-mcp/internal/mcp"
	"weather-mcp/internal/middleware"
)

type toolInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
	Registered  bool            `json:"registered"`
}

func NewMux(reg *mcp.Registry, ch *mcp.Chooser) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)

	// Healthcheck (biar gampang cek port/path)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/route", mcp.NewRouter(reg, ch).ServeHTTP)

	// Katalog tool + status registrasi
	r.Get("/tools", func(w http.ResponseWriter, r *http.Request) {
		defs, err := mcp.LoadToolDefs()
		if err != nil {
			http.Error(w, "catalog error", http.StatusInternalServerError)
			return
		}
		out := make([]toolInfo, 0, len(defs))
		for _, d := range defs {
			_, ok := reg.Get(d.Name)
			out = append(out, toolInfo{Name: d.Name, Description: d.Description, InputSchema: d.InputSchema, Registered: ok})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"tools": out})
	})

	return r
}
