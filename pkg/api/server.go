// Package api serves the HTTP surface: CRUD over the inventory store, the
// impact analysis endpoints, GraphQL, health, and metrics.
package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	gql "github.com/furyczech/it-impact-navigator-sub001/pkg/graphql"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/logging"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/metrics"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/storage"
)

// Server wires the store, the analysis core, and the ambient stack behind an
// http.Handler.
type Server struct {
	store     storage.Store
	logger    logging.Logger
	metrics   *metrics.Registry
	gqlAPI    *gql.Handler
	startTime time.Time
	version   string
}

// NewServer creates a new API server over the given store.
func NewServer(store storage.Store, logger logging.Logger, registry *metrics.Registry) (*Server, error) {
	schema, err := gql.NewSchema(store)
	if err != nil {
		return nil, err
	}

	return &Server{
		store:     store,
		logger:    logger.With(logging.String("component", "api")),
		metrics:   registry,
		gqlAPI:    gql.NewHandler(schema),
		startTime: time.Now(),
		version:   "1.0.0",
	}, nil
}

// Handler returns the fully routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health and metrics
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.HandlerFor(s.metrics.PrometheusRegistry(), promhttp.HandlerOpts{}))

	// Inventory CRUD
	mux.HandleFunc("/components", s.handleComponents)
	mux.HandleFunc("/components/", s.handleComponent) // /components/{id}
	mux.HandleFunc("/dependencies", s.handleDependencies)
	mux.HandleFunc("/dependencies/", s.handleDependency) // /dependencies/{id}
	mux.HandleFunc("/workflows", s.handleWorkflows)
	mux.HandleFunc("/workflows/", s.handleWorkflow) // /workflows/{id}

	// Analysis endpoints
	mux.HandleFunc("/impact/downstream", s.handleDownstreamImpact)
	mux.HandleFunc("/impact/analysis", s.handleAnalysis)
	mux.HandleFunc("/impact/workflows", s.handleWorkflowImpact)

	// GraphQL endpoint
	mux.Handle("/graphql", s.gqlAPI)

	return s.withMiddleware(mux)
}
