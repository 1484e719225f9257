// internal/handlers/http/admin_calls.go
// Admin: daftar audit pemanggilan tool terbaru (JWT protected)

package http

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	mysqlrepo "weather-mcp/internal/repositories/mysql"
)

// CallLister dipenuhi oleh *mysqlrepo.CallRepo.
type CallLister interface {
	Recent(ctx context.Context, f mysqlrepo.CallFilter) ([]mysqlrepo.CallRecord, error)
}

// AdminListCalls: GET /admin/calls?tool=get_alerts,get_forecast&limit=50
func AdminListCalls(calls CallLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if calls == nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"error":   "unavailable",
				"message": "call log is not configured (DB_DSN empty)",
			})
			return
		}

		var f mysqlrepo.CallFilter
		q := r.URL.Query()
		for _, t := range strings.Split(q.Get("tool"), ",") {
			if t = strings.TrimSpace(t); t != "" {
				f.Tools = append(f.Tools, t)
			}
		}
		if n, err := strconv.Atoi(q.Get("limit")); err == nil {
			f.Limit = n
		}

		list, err := calls.Recent(r.Context(), f)
		if err != nil {
			log.Printf("[ERROR] admin list calls: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"calls": list, "count": len(list)})
	}
}
