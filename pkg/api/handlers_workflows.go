package api

import (
	"encoding/json"
	"net/http"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/validation"
)

func (s *Server) handleWorkflows(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		workflows, err := s.store.ListWorkflows(r.Context())
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, s.sanitizeError(err, "list workflows"))
			return
		}
		s.respondJSON(w, http.StatusOK, workflows)

	case http.MethodPost:
		var wf model.BusinessWorkflow
		if err := json.NewDecoder(r.Body).Decode(&wf); err != nil {
			s.respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validation.ValidateNewWorkflow(wf); err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		created, err := s.store.CreateWorkflow(r.Context(), wf)
		if err != nil {
			s.respondStorageError(w, err, "create workflow")
			return
		}
		s.respondJSON(w, http.StatusCreated, created)

	default:
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleWorkflow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/workflows/")
	if !ok {
		s.respondError(w, http.StatusBadRequest, "Invalid path")
		return
	}

	switch r.Method {
	case http.MethodGet:
		wf, err := s.store.GetWorkflow(r.Context(), id)
		if err != nil {
			s.respondStorageError(w, err, "get workflow")
			return
		}
		s.respondJSON(w, http.StatusOK, wf)

	case http.MethodPut:
		var wf model.BusinessWorkflow
		if err := json.NewDecoder(r.Body).Decode(&wf); err != nil {
			s.respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		wf.ID = id
		if err := validation.ValidateWorkflow(wf); err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		updated, err := s.store.UpdateWorkflow(r.Context(), wf)
		if err != nil {
			s.respondStorageError(w, err, "update workflow")
			return
		}
		s.respondJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := s.store.DeleteWorkflow(r.Context(), id); err != nil {
			s.respondStorageError(w, err, "delete workflow")
			return
		}
		s.respondJSON(w, http.StatusOK, map[string]string{"deleted": id})

	default:
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}
