package api

import (
	"encoding/json"
	"net/http"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/validation"
)

func (s *Server) handleDependencies(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		deps, err := s.store.ListDependencies(r.Context())
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, s.sanitizeError(err, "list dependencies"))
			return
		}
		s.respondJSON(w, http.StatusOK, deps)

	case http.MethodPost:
		var d model.Dependency
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			s.respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validation.ValidateNewDependency(d); err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		created, err := s.store.CreateDependency(r.Context(), d)
		if err != nil {
			s.respondStorageError(w, err, "create dependency")
			return
		}
		s.respondJSON(w, http.StatusCreated, created)

	default:
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleDependency(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/dependencies/")
	if !ok {
		s.respondError(w, http.StatusBadRequest, "Invalid path")
		return
	}

	switch r.Method {
	case http.MethodGet:
		d, err := s.store.GetDependency(r.Context(), id)
		if err != nil {
			s.respondStorageError(w, err, "get dependency")
			return
		}
		s.respondJSON(w, http.StatusOK, d)

	case http.MethodDelete:
		if err := s.store.DeleteDependency(r.Context(), id); err != nil {
			s.respondStorageError(w, err, "delete dependency")
			return
		}
		s.respondJSON(w, http.StatusOK, map[string]string{"deleted": id})

	default:
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}
