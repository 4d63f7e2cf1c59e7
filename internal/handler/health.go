package handler

import "net/http"

// Health handles GET /health for load balancer probes
func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
