// internal/app/routes.go
package app

import (
	"net/http"

	"github.com/gorilla/mux"

	hh "weather-mcp/internal/handlers/http"
	mcphandlers "weather-mcp/internal/handlers/mcp"
	"weather-mcp/internal/mcp"
	"weather-mcp/internal/middleware"
)

type RegisterDeps struct {
	Registry *mcp.Registry
	Tools    *mcphandlers.WeatherTools
	Chooser  *mcp.Chooser
	Calls    hh.CallLister // nil = /admin/calls 503
	APIKey   string        // X-API-Key untuk /mcp/*
	Admin    hh.AdminCreds
}

// RegisterRoutesWithDeps menambahkan semua route HTTP.
func RegisterRoutesWithDeps(r *mux.Router, deps RegisterDeps) {
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)

	// --- no prefix ---
	r.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/readyz", hh.ReadyHandler(deps.Tools.ReposStatus)).Methods(http.MethodGet)
	r.HandleFunc("/metrics", hh.MetricsHandler(deps.Registry.Stats)).Methods(http.MethodGet)
	r.HandleFunc("/login", hh.LoginHandler(deps.Admin)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/debug/repos", hh.ReposStatusHandler(deps.Tools.ReposStatus)).Methods(http.MethodGet)

	// --- MCP over HTTP ---
	m := r.PathPrefix("/mcp").Subrouter()
	m.Use(middleware.APIKey(deps.APIKey))
	m.Handle("/route", mcp.NewRouter(deps.Registry, deps.Chooser)).Methods(http.MethodPost)
	m.HandleFunc("/get_alerts", deps.Tools.HTTPHandler(mcphandlers.ToolGetAlerts)).Methods(http.MethodGet, http.MethodPost)
	m.HandleFunc("/get_forecast", deps.Tools.HTTPHandler(mcphandlers.ToolGetForecast)).Methods(http.MethodGet, http.MethodPost)

	// Preflight catch-all
	r.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(hh.PreflightHandler)

	// Admin (JWT protected)
	adminJWT := r.PathPrefix("/admin").Subrouter()
	adminJWT.Use(middleware.AdminJWTAuth(deps.Admin.JWTSecret))
	adminJWT.HandleFunc("/calls", hh.AdminListCalls(deps.Calls)).Methods(http.MethodGet)
}
