// internal/mcp/router.go
// Router MCP (HTTP): menerima request lalu memilih & mengeksekusi tool.

package mcp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"weather-mcp/internal/util"
)

var maxRoutes = func() int {
	if v := os.Getenv("PLAN_MAX_ROUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 8
}()

// Router melayani POST /mcp/route.
type Router struct {
	Reg     *Registry
	Chooser *Chooser
}

func NewRouter(reg *Registry, ch *Chooser) *Router {
	if reg == nil {
		reg = NewRegistry()
	}
	if ch == nil {
		ch = &Chooser{}
	}
	return &Router{Reg: reg, Chooser: ch}
}

type routeParams struct {
	Location *string `json:"location,omitempty"`
	Question string  `json:"question,omitempty"`
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := r.Header.Get("X-Request-ID")

	raw, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ToolResponse{Error: "read body error"})
		util.LogJSON(util.LogEvent{Level: "error", Event: "mcp.route", RequestID: reqID, Error: fmt.Sprintf("read body: %v", err)})
		return
	}
	defer r.Body.Close()

	var envelope struct {
		ToolRequest
		Plan   *Plan   `json:"plan"`
		Routes []Route `json:"routes"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		writeJSON(w, http.StatusBadRequest, ToolResponse{Error: "invalid json"})
		util.LogJSON(util.LogEvent{Level: "error", Event: "mcp.route", RequestID: reqID, Error: fmt.Sprintf("unmarshal: %v", err)})
		return
	}

	// ===== Batch: plan.routes atau routes di root =====
	routes := envelope.Routes
	if envelope.Plan != nil && len(envelope.Plan.Routes) > 0 {
		routes = envelope.Plan.Routes
	}
	if len(routes) > 0 {
		if len(routes) > maxRoutes {
			routes = routes[:maxRoutes]
		}
		items := ExecuteRoutes(r.Context(), rt.Reg, routes)
		writeJSON(w, http.StatusOK, map[string]any{
			"mode":            "mcp",
			"routes_executed": len(items),
			"items":           items,
		})
		util.LogJSON(util.LogEvent{
			Event:      "mcp.route",
			RequestID:  reqID,
			DecisionBy: "explicit-plan",
			DurationMS: time.Since(start).Milliseconds(),
		})
		return
	}

	// ===== Single tool =====
	var p routeParams
	if !isJSONNullOrEmpty(envelope.Params) {
		if err := json.Unmarshal(envelope.Params, &p); err != nil {
			writeJSON(w, http.StatusBadRequest, ToolResponse{Error: "invalid params"})
			return
		}
	}

	defs, _ := LoadToolDefs()
	tool := strings.TrimSpace(envelope.Tool)
	decision := "explicit"
	if tool == "" {
		tool, decision = rt.Chooser.Choose(r.Context(), p.Question, defs)
	}

	if p.Location == nil {
		if loc := ExtractLocation(p.Question); loc != "" {
			p.Location = &loc
		}
	}
	args, _ := json.Marshal(p)

	text, err := rt.Reg.Invoke(r.Context(), tool, args)
	ev := util.LogEvent{
		Event:           "mcp.route",
		RequestID:       reqID,
		Tool:            tool,
		Question:        p.Question,
		DecisionBy:      decision,
		CatalogCount:    len(defs),
		RegisteredCount: len(rt.Reg.List()),
		HasAPIKey:       rt.Chooser.LLM != nil,
	}
	if p.Location != nil {
		ev.Location = *p.Location
	}
	if err != nil {
		writeJSON(w, util.HTTPStatus(err), ToolResponse{Success: false, Tool: tool, Error: err.Error()})
		ev.Level = "warn"
		ev.Error = err.Error()
		ev.DurationMS = time.Since(start).Milliseconds()
		util.LogJSON(ev)
		return
	}

	writeJSON(w, http.StatusOK, ToolResponse{Success: true, Tool: tool, Data: text})
	ev.DurationMS = time.Since(start).Milliseconds()
	util.LogJSON(ev)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
