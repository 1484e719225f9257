// internal/mcp/chooser.go
// Pemilihan tool dari pertanyaan bebas: keyword dulu, lalu LLM, lalu default.

package mcp

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"weather-mcp/internal/mcp/llm"
)

const defaultTool = "get_forecast"

var (
	reForecast = regexp.MustCompile(`(?i)\b(forecast|prakiraan|ramalan|tomorrow|besok|next\s+hours?)\b`)
	reAlerts   = regexp.MustCompile(`(?i)\b(alerts?|warnings?|storms?|thunder\w*|tornado|hurricane|peringatan|badai)\b`)
	rePrep     = regexp.MustCompile(`(?i)\b(in|for|at|di|untuk)\s+`)
	nonWord    = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)
)

// Chooser memilih tool bila request tidak menyebut "tool" secara eksplisit.
type Chooser struct {
	LLM llm.Client // nil = tanpa LLM
}

// Choose mengembalikan nama tool dan sumber keputusan (keyword|llm|default).
func (c *Chooser) Choose(ctx context.Context, question string, defs []ToolDef) (string, string) {
	q := strings.TrimSpace(question)
	switch {
	case q == "":
		return defaultTool, "default"
	case reAlerts.MatchString(q):
		return "get_alerts", "keyword"
	case reForecast.MatchString(q):
		return "get_forecast", "keyword"
	}
	if chosen := c.chooseWithLLM(ctx, q, defs); chosen != "" {
		return chosen, "llm"
	}
	return defaultTool, "default"
}

func (c *Chooser) chooseWithLLM(ctx context.Context, question string, defs []ToolDef) string {
	if c == nil || c.LLM == nil || len(defs) == 0 {
		return ""
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 4*time.Second)
		defer cancel()
	}

	out, err := c.LLM.Complete(ctx, chooserSystemPrompt, buildChooserUserPrompt(question, defs))
	if err != nil {
		return ""
	}
	out = sanitizeToolToken(out)
	for _, d := range defs {
		if strings.EqualFold(out, d.Name) {
			return d.Name
		}
	}
	return ""
}

const chooserSystemPrompt = `You route weather questions.
- Pick exactly ONE tool name from the list.
- Reply with the tool name only (e.g. get_forecast).
- If unsure, pick "get_forecast".`

func buildChooserUserPrompt(question string, defs []ToolDef) string {
	var b strings.Builder
	b.WriteString("Question:\n")
	b.WriteString(question)
	b.WriteString("\n\nAvailable tools:\n")
	for i, d := range defs {
		b.WriteString(fmt.Sprintf("%d) %s - %s\n", i+1, d.Name, strings.TrimSpace(d.Description)))
	}
	b.WriteString("\nReply with the tool name only.")
	return b.String()
}

func sanitizeToolToken(s string) string {
	return strings.ToLower(nonWord.ReplaceAllString(strings.TrimSpace(s), ""))
}

// ExtractLocation mengambil lokasi dari pertanyaan, yaitu teks setelah
// preposisi terakhir ("forecast for tomorrow in London,uk?" -> "London,uk").
func ExtractLocation(question string) string {
	idx := rePrep.FindAllStringIndex(question, -1)
	if len(idx) == 0 {
		return ""
	}
	rest := question[idx[len(idx)-1][1]:]
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(rest), "?!."))
}
