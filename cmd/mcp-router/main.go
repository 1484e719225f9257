// cmd/mcp-router/main.go
package main

import (
	"context"
	"log"
	"net/http"

	"weather-mcp/internal/app"
	"weather-mcp/internal/config"
	"weather-mcp/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	a := app.New(context.Background(), cfg)
	defer a.Close()

	h := server.NewMux(a.Registry, app.NewChooser(cfg))
	log.Printf("MCP Router listening on :%s", cfg.MCPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.MCPPort, h))
}
