// cmd/worker/main.go
// Worker: hapus baris tool_calls yang lebih tua dari CALL_LOG_RETENTION_DAYS.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"weather-mcp/internal/config"
	mysqlrepo "weather-mcp/internal/repositories/mysql"
	"weather-mcp/pkg/db"
)

const pruneEvery = time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.MySQL.DSN == "" {
		log.Fatalf("DB_DSN empty; nothing to prune")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.NewMySQL(ctx, db.Options{DSN: cfg.MySQL.DSN, MaxOpen: 2, MaxIdle: 1})
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	defer conn.Close()

	repo := &mysqlrepo.CallRepo{DB: conn}
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	retention := time.Duration(cfg.MySQL.RetentionDays) * 24 * time.Hour
	log.Printf("Worker started, retention %d days", cfg.MySQL.RetentionDays)

	t := time.NewTicker(pruneEvery)
	defer t.Stop()
	for {
		prune(ctx, repo, retention)
		select {
		case <-ctx.Done():
			log.Println("Worker stopped")
			return
		case <-t.C:
		}
	}
}

func prune(ctx context.Context, repo *mysqlrepo.CallRepo, retention time.Duration) {
	cutoff := time.Now().Add(-retention)
	n, err := repo.PruneBefore(ctx, cutoff)
	if err != nil {
		log.Printf("[WARN] prune tool_calls: %v", err)
		return
	}
	log.Printf("pruned %d tool_calls older than %s", n, cutoff.Format(time.RFC3339))
}
