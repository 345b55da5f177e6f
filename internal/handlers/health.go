package handlers

import "net/http"

// Healthz reports process liveness. Both stores live in memory, so
// there are no downstream dependencies to probe.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
