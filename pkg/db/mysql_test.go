package db

import (
	"context"
	"testing"
)

func TestNewMySQLRejectsBadDSN(t *testing.T) {
	for _, dsn := range []string{"", "not-a-dsn"} {
		if _, err := NewMySQL(context.Background(), Options{DSN: dsn}); err == nil {
			t.Fatalf("expected error for DSN %q", dsn)
		}
	}
}
