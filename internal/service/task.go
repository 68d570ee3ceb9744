package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ivmart/tracker-service/internal/apperr"
	"github.com/ivmart/tracker-service/internal/models"
	"github.com/ivmart/tracker-service/internal/repository"
)

// TaskService handles task CRUD. Tasks carry no owner field, so every
// operation first verifies the parent project against the caller; that scoped
// lookup is the whole authorization check.
type TaskService struct {
	tasks    repository.TaskRepository
	projects repository.ProjectRepository
	log      *logrus.Logger
}

// NewTaskService initializes a new task service
func NewTaskService(tasks repository.TaskRepository, projects repository.ProjectRepository, log *logrus.Logger) *TaskService {
	return &TaskService{tasks: tasks, projects: projects, log: log}
}

// verifyProject confirms the project exists for the owner before any task
// operation touches the task store.
func (s *TaskService) verifyProject(ctx context.Context, projectID, ownerID int64) error {
	if _, err := s.projects.GetByID(ctx, projectID, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("project not found")
		}
		return err
	}
	return nil
}

// List returns all tasks under the project once ownership is verified.
func (s *TaskService) List(ctx context.Context, projectID, ownerID int64) ([]models.TaskItem, error) {
	if err := s.verifyProject(ctx, projectID, ownerID); err != nil {
		return nil, err
	}
	return s.tasks.ListByProject(ctx, projectID)
}

// GetByID returns the task scoped by project once ownership is verified.
func (s *TaskService) GetByID(ctx context.Context, taskID, projectID, ownerID int64) (*models.TaskItem, error) {
	if err := s.verifyProject(ctx, projectID, ownerID); err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(ctx, taskID, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("task not found")
		}
		return nil, err
	}
	return task, nil
}

// Create persists a new task under the project once ownership is verified.
func (s *TaskService) Create(ctx context.Context, projectID int64, title, description, status string, dueDate time.Time, ownerID int64) (*models.TaskItem, error) {
	if err := s.verifyProject(ctx, projectID, ownerID); err != nil {
		return nil, err
	}

	task := &models.TaskItem{
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Status:      status,
		DueDate:     dueDate,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	s.log.Infof("Task %d created in project %d", task.ID, projectID)
	return task, nil
}

// Update re-fetches the task scoped by project, overwrites all mutable
// fields and reports whether the store changed a row.
func (s *TaskService) Update(ctx context.Context, taskID int64, title, description, status string, dueDate time.Time, projectID, ownerID int64) (bool, error) {
	if err := s.verifyProject(ctx, projectID, ownerID); err != nil {
		return false, err
	}

	task, err := s.tasks.GetByID(ctx, taskID, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, apperr.NotFound("task not found")
		}
		return false, err
	}

	task.Title = title
	task.Description = description
	task.Status = status
	task.DueDate = dueDate
	return s.tasks.Update(ctx, task)
}

// Delete removes the task scoped by project once ownership is verified and
// reports whether a row was removed.
func (s *TaskService) Delete(ctx context.Context, taskID, projectID, ownerID int64) (bool, error) {
	if err := s.verifyProject(ctx, projectID, ownerID); err != nil {
		return false, err
	}
	return s.tasks.Delete(ctx, taskID, projectID)
}
