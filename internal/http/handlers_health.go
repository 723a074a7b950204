package httpx

import (
	"encoding/json"
	"net/http"
)

// healthHandler answers readiness and liveness probes. The dashboard holds
// no local state worth checking; a process that can serve this route can
// serve everything else.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "catalog-admin",
	})
}
