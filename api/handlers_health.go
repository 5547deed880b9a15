package api

import (
	"net/http"
)

// handleHealth responds with 200 OK to indicate the service is running
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status": "ok",
		"services": map[string]string{
			"minerstat": "unknown",
		},
	}

	if s.coinsRepo.Healthy() {
		status["services"].(map[string]string)["minerstat"] = "up"
	}

	s.sendJSONResponse(w, status)
}
