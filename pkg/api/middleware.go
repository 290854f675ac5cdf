package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/logging"
)

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withMiddleware wraps the router with request logging and metrics recording.
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		duration := time.Since(start)
		status := strconv.Itoa(recorder.status)
		s.metrics.RecordHTTPRequest(r.Method, routePattern(r.URL.Path), status, duration)
		s.logger.Debug("request handled",
			logging.String("method", r.Method),
			logging.Path(r.URL.Path),
			logging.String("status", status),
			logging.Latency(duration),
		)
	})
}

// routePattern collapses id-bearing paths to their route shape so metric
// label cardinality stays bounded.
func routePattern(path string) string {
	for _, prefix := range []string{"/components/", "/dependencies/", "/workflows/"} {
		if id, ok := pathID(path, prefix); ok && id != "" {
			return prefix + ":id"
		}
	}
	return path
}
