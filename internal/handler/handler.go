// Package handler exposes the HTTP surface: it decodes requests, pulls the
// caller id from the request context, invokes the services and maps error
// kinds to status codes.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ivmart/tracker-service/internal/apperr"
	"github.com/ivmart/tracker-service/internal/middleware"
	"github.com/ivmart/tracker-service/internal/models"
	"github.com/ivmart/tracker-service/internal/service"
)

// AuthService is the part of the auth service the handlers consume.
type AuthService interface {
	Register(ctx context.Context, username, password, email string) (*service.AuthResult, error)
	Login(ctx context.Context, username, password string) (*service.AuthResult, error)
}

// ProjectService is the part of the project service the handlers consume.
type ProjectService interface {
	List(ctx context.Context, ownerID int64) ([]models.Project, error)
	GetByID(ctx context.Context, projectID, ownerID int64) (*models.Project, error)
	Create(ctx context.Context, name, description string, ownerID int64) (*models.Project, error)
	Update(ctx context.Context, projectID int64, name, description string, ownerID int64) (bool, error)
	Delete(ctx context.Context, projectID, ownerID int64) (bool, error)
}

// TaskService is the part of the task service the handlers consume.
type TaskService interface {
	List(ctx context.Context, projectID, ownerID int64) ([]models.TaskItem, error)
	GetByID(ctx context.Context, taskID, projectID, ownerID int64) (*models.TaskItem, error)
	Create(ctx context.Context, projectID int64, title, description, status string, dueDate time.Time, ownerID int64) (*models.TaskItem, error)
	Update(ctx context.Context, taskID int64, title, description, status string, dueDate time.Time, projectID, ownerID int64) (bool, error)
	Delete(ctx context.Context, taskID, projectID, ownerID int64) (bool, error)
}

type Handler struct {
	auth     AuthService
	projects ProjectService
	tasks    TaskService
	log      *logrus.Logger
}

func NewHandler(auth AuthService, projects ProjectService, tasks TaskService, log *logrus.Logger) *Handler {
	return &Handler{auth: auth, projects: projects, tasks: tasks, log: log}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("Failed to write response: %v", err)
	}
}

func (h *Handler) respondMessage(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}

// respondError maps the error kind to an HTTP status. Unclassified errors are
// infrastructure failures: logged, surfaced as a plain 500.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindConflict, apperr.KindValidation:
		h.respondMessage(w, http.StatusBadRequest, err.Error())
	case apperr.KindUnauthorized:
		h.respondMessage(w, http.StatusUnauthorized, err.Error())
	case apperr.KindNotFound:
		h.respondMessage(w, http.StatusNotFound, err.Error())
	default:
		h.log.Errorf("Request failed: %v", err)
		h.respondMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// userID extracts the caller id placed in the context by the auth middleware.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		h.respondMessage(w, http.StatusUnauthorized, err.Error())
		return 0, false
	}
	return id, true
}

// pathID parses a numeric path variable.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, apperr.Validation("invalid " + name)
	}
	return id, nil
}
