package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ivmart/tracker-service/internal/apperr"
	"github.com/ivmart/tracker-service/internal/models"
	"github.com/ivmart/tracker-service/internal/repository"
)

// ProjectService handles project CRUD, always scoped to the requesting owner
type ProjectService struct {
	projects repository.ProjectRepository
	tasks    repository.TaskRepository
	log      *logrus.Logger
}

// NewProjectService initializes a new project service
func NewProjectService(projects repository.ProjectRepository, tasks repository.TaskRepository, log *logrus.Logger) *ProjectService {
	return &ProjectService{projects: projects, tasks: tasks, log: log}
}

// List returns all projects owned by ownerID; an empty list is not an error.
func (s *ProjectService) List(ctx context.Context, ownerID int64) ([]models.Project, error) {
	return s.projects.ListByOwner(ctx, ownerID)
}

// GetByID returns the project if it exists and belongs to ownerID.
func (s *ProjectService) GetByID(ctx context.Context, projectID, ownerID int64) (*models.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("project not found")
		}
		return nil, err
	}
	return project, nil
}

// Create persists a new project owned by ownerID and returns it with the
// assigned id.
func (s *ProjectService) Create(ctx context.Context, name, description string, ownerID int64) (*models.Project, error) {
	project := &models.Project{
		Name:        name,
		Description: description,
		UserID:      ownerID,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	s.log.Infof("Project %d created by user %d", project.ID, ownerID)
	return project, nil
}

// Update re-fetches the project scoped by owner, overwrites name and
// description and reports whether the store changed a row.
func (s *ProjectService) Update(ctx context.Context, projectID int64, name, description string, ownerID int64) (bool, error) {
	project, err := s.projects.GetByID(ctx, projectID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, apperr.NotFound("project not found")
		}
		return false, err
	}

	project.Name = name
	project.Description = description
	return s.projects.Update(ctx, project)
}

// Delete removes the project scoped by owner. On success the project's tasks
// are removed as well; they would be unreachable once the project is gone.
func (s *ProjectService) Delete(ctx context.Context, projectID, ownerID int64) (bool, error) {
	deleted, err := s.projects.Delete(ctx, projectID, ownerID)
	if err != nil || !deleted {
		return deleted, err
	}

	removed, err := s.tasks.DeleteByProject(ctx, projectID)
	if err != nil {
		return true, fmt.Errorf("project deleted but tasks not cleaned up: %w", err)
	}
	s.log.Infof("Project %d deleted by user %d (%d tasks removed)", projectID, ownerID, removed)
	return true, nil
}
