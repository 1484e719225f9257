// internal/handlers/http/debug_repos.go
package http

import "net/http"

func ReposStatusHandler(status func() map[string]bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, status())
	}
}
