// cmd/api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-mcp/internal/app"
	"weather-mcp/internal/config"
)

var BuildVersion = "dev" // diisi saat ldflags

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	a := app.New(context.Background(), cfg) // <-- inisialisasi + inject weather client & repo
	defer a.Close()

	addr := ":" + cfg.AppPort
	srv := &http.Server{
		Addr:         addr,
		Handler:      a.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second, // > OPENWEATHER_TIMEOUT_SEC default
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("API %s running on %s", BuildVersion, addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
