package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/logging"
)

// ErrorResponse is the wire shape of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, ErrorResponse{Error: message})
}

// sanitizeError logs the full error and returns a user-safe message; internal
// details never leave the process.
func (s *Server) sanitizeError(err error, operation string) string {
	s.logger.Error("request failed", logging.Operation(operation), logging.Error(err))
	return fmt.Sprintf("%s failed", operation)
}

// pathID extracts the trailing id from paths shaped like /components/{id}.
func pathID(path, prefix string) (string, bool) {
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	id := strings.TrimSuffix(path[len(prefix):], "/")
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"version": s.version,
		"uptime":  time.Since(s.startTime).String(),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	// Readiness is a snapshot read: if storage answers, we can serve.
	if _, err := s.store.Snapshot(r.Context()); err != nil {
		s.respondError(w, http.StatusServiceUnavailable, s.sanitizeError(err, "readiness check"))
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
