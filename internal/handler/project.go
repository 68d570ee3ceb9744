package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ivmart/tracker-service/internal/apperr"
	"github.com/ivmart/tracker-service/internal/export"
)

type projectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListProjects returns all projects owned by the caller
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.userID(w, r)
	if !ok {
		return
	}

	projects, err := h.projects.List(r.Context(), ownerID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, projects)
}

// GetProject returns a single project owned by the caller
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, err)
		return
	}

	project, err := h.projects.GetByID(r.Context(), id, ownerID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, project)
}

// CreateProject creates a new project owned by the caller
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, apperr.Validation("invalid request body"))
		return
	}
	if req.Name == "" {
		h.respondError(w, apperr.Validation("name is required"))
		return
	}

	project, err := h.projects.Create(r.Context(), req.Name, req.Description, ownerID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/projects/%d", project.ID))
	h.respondJSON(w, http.StatusCreated, project)
}

// UpdateProject overwrites a project's name and description
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, err)
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, apperr.Validation("invalid request body"))
		return
	}

	updated, err := h.projects.Update(r.Context(), id, req.Name, req.Description, ownerID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if !updated {
		h.respondMessage(w, http.StatusNotFound, "project not found or could not be updated")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteProject removes a project and its tasks
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, err)
		return
	}

	deleted, err := h.projects.Delete(r.Context(), id, ownerID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if !deleted {
		h.respondMessage(w, http.StatusNotFound, "project not found or could not be deleted")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportProject returns the project and its tasks as an XML document
func (h *Handler) ExportProject(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		h.respondError(w, err)
		return
	}

	project, err := h.projects.GetByID(r.Context(), id, ownerID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	tasks, err := h.tasks.List(r.Context(), id, ownerID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	doc, err := export.ProjectXML(project, tasks)
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		h.log.Errorf("Failed to write export: %v", err)
	}
}
