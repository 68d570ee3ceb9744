package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ivmart/tracker-service/internal/apperr"
)

type taskRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"dueDate"`
}

// ListTasks returns all tasks under a project owned by the caller
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.userID(w, r)
	if !ok {
		return
	}
	projectID, err := pathID(r, "projectId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	tasks, err := h.tasks.List(r.Context(), projectID, ownerID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, tasks)
}

// GetTask returns a single task under a project owned by the caller
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.userID(w, r)
	if !ok {
		return
	}
	projectID, err := pathID(r, "projectId")
	if err != nil {
		h.respondError(w, err)
		return
	}
	taskID, err := pathID(r, "taskId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	task, err := h.tasks.GetByID(r.Context(), taskID, projectID, ownerID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, task)
}

// CreateTask creates a new task under a project owned by the caller
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.userID(w, r)
	if !ok {
		return
	}
	projectID, err := pathID(r, "projectId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, apperr.Validation("invalid request body"))
		return
	}
	if req.Title == "" {
		h.respondError(w, apperr.Validation("title is required"))
		return
	}

	task, err := h.tasks.Create(r.Context(), projectID, req.Title, req.Description, req.Status, req.DueDate, ownerID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/projects/%d/tasks/%d", projectID, task.ID))
	h.respondJSON(w, http.StatusCreated, task)
}

// UpdateTask overwrites a task's mutable fields
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.userID(w, r)
	if !ok {
		return
	}
	projectID, err := pathID(r, "projectId")
	if err != nil {
		h.respondError(w, err)
		return
	}
	taskID, err := pathID(r, "taskId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, apperr.Validation("invalid request body"))
		return
	}

	updated, err := h.tasks.Update(r.Context(), taskID, req.Title, req.Description, req.Status, req.DueDate, projectID, ownerID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if !updated {
		h.respondMessage(w, http.StatusNotFound, "task not found or could not be updated")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTask removes a task under a project owned by the caller
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.userID(w, r)
	if !ok {
		return
	}
	projectID, err := pathID(r, "projectId")
	if err != nil {
		h.respondError(w, err)
		return
	}
	taskID, err := pathID(r, "taskId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	deleted, err := h.tasks.Delete(r.Context(), taskID, projectID, ownerID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if !deleted {
		h.respondMessage(w, http.StatusNotFound, "task not found or could not be deleted")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
