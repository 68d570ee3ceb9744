// Package repository provides database access for users, projects and tasks.
// All queries run against a shared *sql.DB pool; callers pass a context so a
// cancelled request releases its connection.
//
// Expected tables:
//
//	users(id, username unique, password_hash, email, created_at)
//	projects(id, name, description, created_at, user_id)
//	tasks(id, project_id, title, description, status, due_date)
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ivmart/tracker-service/internal/models"
)

var (
	// ErrNotFound is returned when no row matches the scoped lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("record already exists")
)

// UserRepository persists user records.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// ProjectRepository persists project records scoped by owner.
type ProjectRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Project, error)
	GetByID(ctx context.Context, projectID, ownerID int64) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) (bool, error)
	Delete(ctx context.Context, projectID, ownerID int64) (bool, error)
}

// TaskRepository persists task records scoped by project.
type TaskRepository interface {
	ListByProject(ctx context.Context, projectID int64) ([]models.TaskItem, error)
	GetByID(ctx context.Context, taskID, projectID int64) (*models.TaskItem, error)
	Create(ctx context.Context, task *models.TaskItem) error
	Update(ctx context.Context, task *models.TaskItem) (bool, error)
	Delete(ctx context.Context, taskID, projectID int64) (bool, error)
	DeleteByProject(ctx context.Context, projectID int64) (int64, error)
	ListDueSoon(ctx context.Context, within time.Duration) ([]models.DueTask, error)
}
