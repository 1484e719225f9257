// internal/app/app.go
package app

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"weather-mcp/internal/config"
	hh "weather-mcp/internal/handlers/http"
	mcphandlers "weather-mcp/internal/handlers/mcp"
	"weather-mcp/internal/mcp"
	"weather-mcp/internal/mcp/llm"
	mysqlrepo "weather-mcp/internal/repositories/mysql"
	"weather-mcp/internal/util"
	"weather-mcp/pkg/db"
	"weather-mcp/pkg/weather"
)

// App menampung router utama beserta dependensi yang sudah di-wire.
type App struct {
	Router   *mux.Router
	Registry *mcp.Registry
	Tools    *mcphandlers.WeatherTools
	DB       *sql.DB // nil bila DB_DSN kosong / gagal konek
}

// New membangun semua dependensi dari config lalu mendaftarkan routes.
// MySQL dan LLM opsional: gagal init hanya di-log, tool cuaca tetap jalan.
func New(ctx context.Context, cfg *config.Config) *App {
	a := &App{Router: mux.NewRouter(), Registry: mcp.NewRegistry()}
	util.SetLogLevel(cfg.LogLevel)

	// === init DB (audit log tool_calls) ===
	var calls *mysqlrepo.CallRepo
	if cfg.MySQL.DSN != "" {
		conn, err := db.NewMySQL(ctx, db.Options{DSN: cfg.MySQL.DSN, MaxOpen: cfg.MySQL.MaxOpen, MaxIdle: cfg.MySQL.MaxIdle})
		if err != nil {
			log.Printf("[WARN] mysql not ready, call log disabled: %v", err)
		} else {
			repo := &mysqlrepo.CallRepo{DB: conn}
			if err := repo.EnsureSchema(ctx); err != nil {
				log.Printf("[WARN] %v; call log disabled", err)
				_ = conn.Close()
			} else {
				a.DB = conn
				calls = repo
			}
		}
	} else {
		log.Printf("[WARN] DB_DSN empty; skipping DB init")
	}

	// === tools ===
	a.Tools = &mcphandlers.WeatherTools{
		Weather: weather.NewClient(weather.Config{
			APIKey:  cfg.Weather.APIKey,
			BaseURL: cfg.Weather.BaseURL,
			Timeout: cfg.Weather.Timeout,
		}),
		Clock: util.RealClock{},
	}
	if calls != nil {
		a.Tools.Calls = calls
	}
	RegisterTools(a.Registry, a.Tools)

	deps := RegisterDeps{
		Registry: a.Registry,
		Tools:    a.Tools,
		Chooser:  NewChooser(cfg),
		APIKey:   cfg.APIKey,
		Admin: hh.AdminCreds{
			User:      cfg.Admin.User,
			PassHash:  cfg.Admin.PassHash,
			JWTSecret: cfg.Admin.JWTSecret,
		},
	}
	if calls != nil {
		deps.Calls = calls
	}
	RegisterRoutesWithDeps(a.Router, deps)
	return a
}

// RegisterTools mendaftarkan get_alerts & get_forecast ke registry.
func RegisterTools(reg *mcp.Registry, tools *mcphandlers.WeatherTools) {
	reg.Register(mcphandlers.ToolGetAlerts, tools.Tool(mcphandlers.ToolGetAlerts))
	reg.Register(mcphandlers.ToolGetForecast, tools.Tool(mcphandlers.ToolGetForecast))
}

// NewChooser: LLM hanya dipakai bila OPENAI_API_KEY di-set.
func NewChooser(cfg *config.Config) *mcp.Chooser {
	ch := &mcp.Chooser{}
	if cfg.LLM.APIKey == "" {
		return ch
	}
	c, err := llm.New(llm.Config{APIKey: cfg.LLM.APIKey, BaseURL: cfg.LLM.APIBase, Model: cfg.LLM.Model})
	if err != nil {
		log.Printf("[WARN] init llm chooser: %v", err)
		return ch
	}
	ch.LLM = c
	return ch
}

// Close menutup koneksi DB bila ada.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

// Handler mengembalikan router lengkap dengan middleware global.
func (a *App) Handler() http.Handler {
	return a.Router
}
