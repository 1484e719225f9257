package mysql

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBuildRecentQueryDefaults(t *testing.T) {
	q, args := buildRecentQuery(CallFilter{})
	if strings.Contains(q, "WHERE") {
		t.Fatalf("unexpected WHERE in %q", q)
	}
	if len(args) != 1 || args[0] != 50 {
		t.Fatalf("args = %v, want [50]", args)
	}
}

func TestBuildRecentQueryToolFilter(t *testing.T) {
	q, args := buildRecentQuery(CallFilter{Tools: []string{"get_alerts", "get_forecast"}, Limit: 10})
	if !strings.Contains(q, "tool IN (?,?)") {
		t.Fatalf("missing IN clause: %q", q)
	}
	if len(args) != 3 || args[0] != "get_alerts" || args[2] != 10 {
		t.Fatalf("args = %v", args)
	}
}

func TestPlaceholders(t *testing.T) {
	if got := placeholders(0); got != "" {
		t.Fatalf("placeholders(0) = %q", got)
	}
	if got := placeholders(3); got != "?,?,?" {
		t.Fatalf("placeholders(3) = %q", got)
	}
}

func TestTruncateCountsCharacters(t *testing.T) {
	fits := strings.Repeat("é", 200)
	if got := truncate(fits, 255); got != fits {
		t.Fatalf("200-char location cut to %d chars", utf8.RuneCountInString(got))
	}

	long := strings.Repeat("東京", 200)
	got := truncate(long, 255)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8")
	}
	if n := utf8.RuneCountInString(got); n != 255 {
		t.Fatalf("got %d chars, want 255", n)
	}

	if got := truncate("London,uk", 255); got != "London,uk" {
		t.Fatalf("short location changed: %q", got)
	}
}
