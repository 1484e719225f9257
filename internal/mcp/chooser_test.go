package mcp

import (
	"context"
	"errors"
	"testing"
)

type stubLLM struct {
	out   string
	err   error
	calls int
}

func (s *stubLLM) Complete(context.Context, string, string) (string, error) {
	s.calls++
	return s.out, s.err
}

func TestChooseKeyword(t *testing.T) {
	c := &Chooser{}
	cases := []struct{ q, want string }{
		{"Any storm warnings in Miami,us?", "get_alerts"},
		{"ada peringatan badai di Jakarta,id?", "get_alerts"},
		{"forecast for tomorrow in London,uk", "get_forecast"},
		{"prakiraan cuaca untuk Bandung,id", "get_forecast"},
	}
	for _, tc := range cases {
		got, by := c.Choose(context.Background(), tc.q, nil)
		if got != tc.want || by != "keyword" {
			t.Errorf("Choose(%q) = %s/%s, want %s/keyword", tc.q, got, by, tc.want)
		}
	}
}

func TestChooseLLMThenDefault(t *testing.T) {
	defs, _ := LoadToolDefs()

	llm := &stubLLM{out: "Get_Alerts."}
	got, by := (&Chooser{LLM: llm}).Choose(context.Background(), "is it dangerous outside in Oslo?", defs)
	if got != "get_alerts" || by != "llm" {
		t.Fatalf("got %s/%s", got, by)
	}

	llm = &stubLLM{err: errors.New("quota")}
	got, by = (&Chooser{LLM: llm}).Choose(context.Background(), "how is it in Oslo?", defs)
	if got != "get_forecast" || by != "default" || llm.calls != 1 {
		t.Fatalf("got %s/%s calls=%d", got, by, llm.calls)
	}

	got, by = (&Chooser{LLM: &stubLLM{out: "rm -rf"}}).Choose(context.Background(), "hmm in Oslo", defs)
	if got != "get_forecast" || by != "default" {
		t.Fatalf("unknown llm answer must fall back, got %s/%s", got, by)
	}
}

func TestExtractLocation(t *testing.T) {
	cases := []struct{ q, want string }{
		{"forecast for tomorrow in London,uk?", "London,uk"},
		{"alerts in Paris,fr", "Paris,fr"},
		{"cuaca di Jakarta,id!", "Jakarta,id"},
		{"weather please", ""},
	}
	for _, tc := range cases {
		if got := ExtractLocation(tc.q); got != tc.want {
			t.Errorf("ExtractLocation(%q) = %q, want %q", tc.q, got, tc.want)
		}
	}
}
