package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/impact"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/logging"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

// DownstreamImpactResponse is the wire shape of GET /impact/downstream.
type DownstreamImpactResponse struct {
	OfflineRoots []string     `json:"offlineRoots"`
	Impacted     []string     `json:"impacted"`
	Causes       []CauseEntry `json:"causes"`
}

// CauseEntry attributes one impacted component to its nearest offline root.
type CauseEntry struct {
	ComponentID string `json:"componentId"`
	RootID      string `json:"rootId"`
	Hops        int    `json:"hops"`
}

// WorkflowImpactResponse is the wire shape of GET /impact/workflows.
type WorkflowImpactResponse struct {
	AffectedWorkflows []WorkflowImpactEntry `json:"affectedWorkflows"`
}

// WorkflowImpactEntry carries one affected workflow plus its condensed step
// view for display.
type WorkflowImpactEntry struct {
	Workflow        model.BusinessWorkflow `json:"workflow"`
	ImpactedStepIDs []string               `json:"impactedStepIds"`
	CondensedSteps  []model.WorkflowStep   `json:"condensedSteps"`
}

func (s *Server) handleDownstreamImpact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	start := time.Now()
	snap, err := s.store.Snapshot(r.Context())
	if err != nil {
		s.metrics.RecordSnapshotError("api")
		s.respondError(w, http.StatusInternalServerError, s.sanitizeError(err, "read snapshot"))
		return
	}
	s.metrics.RecordSnapshot("api", snap)

	roots := impact.OfflineRoots(snap.Components)
	impacted := impact.ComputeDownstreamImpact(snap.Components, snap.Dependencies, nil)
	causes := impact.AttributeCauses(snap.Components, snap.Dependencies)

	resp := DownstreamImpactResponse{
		OfflineRoots: roots,
		Impacted:     sortedIDs(impacted),
		Causes:       causeEntries(causes),
	}

	s.metrics.RecordAnalysis("downstream", "success", time.Since(start), len(impacted))
	s.logger.Info("downstream impact computed",
		logging.Int("offline_roots", len(roots)),
		logging.Int("impacted", len(impacted)),
		logging.Latency(time.Since(start)))
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	start := time.Now()
	snap, err := s.store.Snapshot(r.Context())
	if err != nil {
		s.metrics.RecordSnapshotError("api")
		s.respondError(w, http.StatusInternalServerError, s.sanitizeError(err, "read snapshot"))
		return
	}
	s.metrics.RecordSnapshot("api", snap)

	scope := impact.ScopeAll
	if id := r.URL.Query().Get("componentId"); id != "" {
		scope = impact.Scope{ComponentID: id}
	}

	results := impact.ComputeAnalysisResults(snap.Components, snap.Dependencies, snap.Workflows, scope)
	if scope != impact.ScopeAll && len(results) == 0 {
		s.respondError(w, http.StatusNotFound, "component not found")
		return
	}

	s.metrics.RecordAnalysis("per_component", "success", time.Since(start), len(results))
	s.respondJSON(w, http.StatusOK, results)
}

func (s *Server) handleWorkflowImpact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	start := time.Now()
	snap, err := s.store.Snapshot(r.Context())
	if err != nil {
		s.metrics.RecordSnapshotError("api")
		s.respondError(w, http.StatusInternalServerError, s.sanitizeError(err, "read snapshot"))
		return
	}
	s.metrics.RecordSnapshot("api", snap)

	roots := impact.OfflineRoots(snap.Components)
	impacted := impact.ComputeDownstreamImpact(snap.Components, snap.Dependencies, nil)

	// Steps referencing an offline root directly are down too.
	unavailable := make(map[string]bool, len(impacted)+len(roots))
	for id := range impacted {
		unavailable[id] = true
	}
	for _, id := range roots {
		unavailable[id] = true
	}

	affected := impact.AffectedWorkflows(snap.Workflows, unavailable)
	entries := make([]WorkflowImpactEntry, len(affected))
	for i, wi := range affected {
		entries[i] = WorkflowImpactEntry{
			Workflow:        wi.Workflow,
			ImpactedStepIDs: wi.ImpactedStepIDs,
			CondensedSteps:  impact.CondensedSteps(wi.Workflow, unavailable),
		}
	}

	s.metrics.RecordAnalysis("workflow", "success", time.Since(start), len(impacted))
	s.metrics.RecordWorkflowImpact(len(affected), len(roots))
	s.respondJSON(w, http.StatusOK, WorkflowImpactResponse{AffectedWorkflows: entries})
}

func sortedIDs(set map[string]bool) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func causeEntries(causes map[string]impact.Cause) []CauseEntry {
	entries := make([]CauseEntry, 0, len(causes))
	for id, c := range causes {
		entries = append(entries, CauseEntry{ComponentID: id, RootID: c.RootID, Hops: c.Hops})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ComponentID < entries[j].ComponentID })
	return entries
}
