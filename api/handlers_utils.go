package api

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// sendJSONResponse is a common wrapper for JSON responses that sets Content-Type,
// Content-Length and ETag headers
func (s *Server) sendJSONResponse(w http.ResponseWriter, data interface{}) {
	s.writeJSON(w, http.StatusOK, data, true)
}

// sendJSONError writes {"error": message} with the given status
func (s *Server) sendJSONError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message}, false)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}, withETag bool) {
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseBytes)))
	if withETag {
		hash := md5.Sum(responseBytes)
		w.Header().Set("ETag", "\""+hex.EncodeToString(hash[:])+"\"")
	}
	w.WriteHeader(status)

	if _, err := w.Write(responseBytes); err != nil && s.logger != nil {
		s.logger.WithError(err).Error("Error writing response")
	}
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			s.logger.WithError(err).Error("Error shutting down server")
		}
	}
}

// splitParam splits a comma separated query value, dropping blanks
func splitParam(param string) []string {
	if param == "" {
		return []string{}
	}

	parts := strings.Split(param, ",")
	result := []string{}
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
