// repositories/mysql/calls_repo.go
// Repo audit log pemanggilan tool (tanpa menyimpan data cuaca)

package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const schemaToolCalls = `
CREATE TABLE IF NOT EXISTS tool_calls (
	id          CHAR(36)     NOT NULL PRIMARY KEY,
	tool        VARCHAR(64)  NOT NULL,
	location    VARCHAR(255) NOT NULL,
	outcome     VARCHAR(16)  NOT NULL,
	duration_ms BIGINT       NOT NULL,
	created_at  DATETIME(3)  NOT NULL,
	KEY idx_tool_calls_created (created_at)
)`

type CallRepo struct{ DB *sql.DB }

type CallRecord struct {
	ID         string    `json:"id"`
	Tool       string    `json:"tool"`
	Location   string    `json:"location"`
	Outcome    string    `json:"outcome"` // ok | unavailable | fallback
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

type CallFilter struct {
	Tools []string
	Limit int
}

// EnsureSchema membuat tabel tool_calls bila belum ada.
func (r *CallRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, schemaToolCalls); err != nil {
		return fmt.Errorf("create tool_calls: %w", err)
	}
	return nil
}

func (r *CallRepo) Insert(ctx context.Context, c CallRecord) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO tool_calls (id, tool, location, outcome, duration_ms, created_at) VALUES (?,?,?,?,?,?)`,
		c.ID, c.Tool, truncate(c.Location, 255), c.Outcome, c.DurationMS, c.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert tool_call: %w", err)
	}
	return nil
}

func (r *CallRepo) Recent(ctx context.Context, f CallFilter) ([]CallRecord, error) {
	query, args := buildRecentQuery(f)
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tool_calls: %w", err)
	}
	defer rows.Close()

	list := make([]CallRecord, 0)
	for rows.Next() {
		var c CallRecord
		if err := rows.Scan(&c.ID, &c.Tool, &c.Location, &c.Outcome, &c.DurationMS, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tool_call: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return list, nil
}

// PruneBefore menghapus baris lebih tua dari t; mengembalikan jumlah baris terhapus.
func (r *CallRepo) PruneBefore(ctx context.Context, t time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM tool_calls WHERE created_at < ?`, t.UTC())
	if err != nil {
		return 0, fmt.Errorf("prune tool_calls: %w", err)
	}
	return res.RowsAffected()
}

func buildRecentQuery(f CallFilter) (string, []any) {
	if f.Limit <= 0 || f.Limit > 500 {
		f.Limit = 50
	}
	var (
		b    strings.Builder
		args []any
	)
	b.WriteString(`SELECT id, tool, location, outcome, duration_ms, created_at FROM tool_calls`)
	if len(f.Tools) > 0 {
		b.WriteString(` WHERE tool IN (` + placeholders(len(f.Tools)) + `)`)
		for _, t := range f.Tools {
			args = append(args, t)
		}
	}
	b.WriteString(` ORDER BY created_at DESC LIMIT ?`)
	args = append(args, f.Limit)
	return b.String(), args
}

// truncate memotong s menjadi maksimal n karakter (VARCHAR menghitung karakter, bukan byte).
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
