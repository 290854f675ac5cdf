package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/storage"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/validation"
)

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		components, err := s.store.ListComponents(r.Context())
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, s.sanitizeError(err, "list components"))
			return
		}
		s.respondJSON(w, http.StatusOK, components)

	case http.MethodPost:
		var c model.Component
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			s.respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validation.ValidateNewComponent(c); err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		created, err := s.store.CreateComponent(r.Context(), c)
		if err != nil {
			s.respondStorageError(w, err, "create component")
			return
		}
		s.respondJSON(w, http.StatusCreated, created)

	default:
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleComponent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/components/")
	if !ok {
		s.respondError(w, http.StatusBadRequest, "Invalid path")
		return
	}

	switch r.Method {
	case http.MethodGet:
		c, err := s.store.GetComponent(r.Context(), id)
		if err != nil {
			s.respondStorageError(w, err, "get component")
			return
		}
		s.respondJSON(w, http.StatusOK, c)

	case http.MethodPut:
		var c model.Component
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			s.respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		c.ID = id
		if err := validation.ValidateComponent(c); err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		updated, err := s.store.UpdateComponent(r.Context(), c)
		if err != nil {
			s.respondStorageError(w, err, "update component")
			return
		}
		s.respondJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := s.store.DeleteComponent(r.Context(), id); err != nil {
			s.respondStorageError(w, err, "delete component")
			return
		}
		s.respondJSON(w, http.StatusOK, map[string]string{"deleted": id})

	default:
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// respondStorageError maps the storage sentinel errors to HTTP statuses.
func (s *Server) respondStorageError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrReferentialIntegrity):
		s.respondError(w, http.StatusConflict, err.Error())
	default:
		s.respondError(w, http.StatusInternalServerError, s.sanitizeError(err, operation))
	}
}
