// pkg/db/mysql.go
// Helper koneksi MySQL (menggunakan database/sql) untuk audit log tool call

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

type Options struct {
	DSN     string
	MaxOpen int
	MaxIdle int
}

// NewMySQL membuka koneksi dan memastikan DB bisa di-ping.
func NewMySQL(ctx context.Context, o Options) (*sql.DB, error) {
	if o.DSN == "" {
		return nil, fmt.Errorf("mysql: empty DSN")
	}
	// created_at di-scan ke time.Time, jadi parseTime wajib aktif
	cfg, err := mysql.ParseDSN(o.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if o.MaxOpen > 0 {
		db.SetMaxOpenConns(o.MaxOpen)
	}
	if o.MaxIdle > 0 {
		db.SetMaxIdleConns(o.MaxIdle)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return db, nil
}
