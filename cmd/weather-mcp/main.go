// cmd/weather-mcp/main.go
// Entry point MCP: stdio (default) atau HTTP bila MCP_TRANSPORT=http.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-mcp/internal/app"
	"weather-mcp/internal/config"
	"weather-mcp/internal/mcp"
)

var BuildVersion = "dev" // diisi saat ldflags

func main() {
	// stdout dipakai protokol MCP; semua log ke stderr
	log.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := app.New(ctx, cfg)
	defer a.Close()

	if cfg.Transport == "http" {
		serveHTTP(ctx, a, ":"+cfg.AppPort)
		return
	}

	s, err := mcp.NewServer(a.Registry, cfg.AppName, BuildVersion)
	if err != nil {
		log.Fatalf("mcp server: %v", err)
	}
	log.Printf("%s %s serving MCP over stdio", cfg.AppName, BuildVersion)
	if err := mcp.ServeStdio(ctx, s); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("stdio: %v", err)
	}
}

func serveHTTP(ctx context.Context, a *app.App, addr string) {
	srv := &http.Server{
		Addr:         addr,
		Handler:      a.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("MCP HTTP running on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Printf("[ERROR] server forced to shutdown: %v", err)
	}
}
