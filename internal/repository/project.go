package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ivmart/tracker-service/internal/models"
)

// ProjectRepo provides database operations on projects
type ProjectRepo struct {
	db *sql.DB
}

// NewProjectRepository initializes a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// ListByOwner returns all projects belonging to the owner, oldest first.
func (r *ProjectRepo) ListByOwner(ctx context.Context, ownerID int64) ([]models.Project, error) {
	query := `
		SELECT id, name, description, created_at, user_id
		FROM projects
		WHERE user_id = $1
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetByID retrieves a project by id, scoped by owner. A project owned by
// someone else is indistinguishable from a missing one.
func (r *ProjectRepo) GetByID(ctx context.Context, projectID, ownerID int64) (*models.Project, error) {
	p := &models.Project{}
	query := `
		SELECT id, name, description, created_at, user_id
		FROM projects
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, projectID, ownerID).
		Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return p, nil
}

// Create inserts a new project and fills in the assigned id and creation time.
func (r *ProjectRepo) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (name, description, created_at, user_id)
		VALUES ($1, $2, CURRENT_TIMESTAMP, $3)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, project.Name, project.Description, project.UserID).
		Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Update overwrites name and description, scoped by owner, and reports
// whether a row changed.
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) (bool, error) {
	query := `
		UPDATE projects
		SET name = $1, description = $2
		WHERE id = $3 AND user_id = $4`
	res, err := r.db.ExecContext(ctx, query, project.Name, project.Description, project.ID, project.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to update project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update project: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a project scoped by owner and reports whether a row was
// removed.
func (r *ProjectRepo) Delete(ctx context.Context, projectID, ownerID int64) (bool, error) {
	query := `DELETE FROM projects WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, projectID, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	return affected > 0, nil
}
