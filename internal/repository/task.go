package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ivmart/tracker-service/internal/models"
)

// TaskRepo provides database operations on tasks
type TaskRepo struct {
	db *sql.DB
}

// NewTaskRepository initializes a new task repository
func NewTaskRepository(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// ListByProject returns all tasks under the project, oldest first.
func (r *TaskRepo) ListByProject(ctx context.Context, projectID int64) ([]models.TaskItem, error) {
	query := `
		SELECT id, project_id, title, description, status, due_date
		FROM tasks
		WHERE project_id = $1
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.TaskItem{}
	for rows.Next() {
		var t models.TaskItem
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.DueDate); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetByID retrieves a task by id, scoped by project.
func (r *TaskRepo) GetByID(ctx context.Context, taskID, projectID int64) (*models.TaskItem, error) {
	t := &models.TaskItem{}
	query := `
		SELECT id, project_id, title, description, status, due_date
		FROM tasks
		WHERE id = $1 AND project_id = $2`
	err := r.db.QueryRowContext(ctx, query, taskID, projectID).
		Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.DueDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return t, nil
}

// Create inserts a new task and fills in the assigned id.
func (r *TaskRepo) Create(ctx context.Context, task *models.TaskItem) error {
	query := `
		INSERT INTO tasks (project_id, title, description, status, due_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		task.ProjectID, task.Title, task.Description, task.Status, task.DueDate).
		Scan(&task.ID)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// Update overwrites all mutable fields, scoped by project, and reports
// whether a row changed.
func (r *TaskRepo) Update(ctx context.Context, task *models.TaskItem) (bool, error) {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, due_date = $4
		WHERE id = $5 AND project_id = $6`
	res, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Status, task.DueDate, task.ID, task.ProjectID)
	if err != nil {
		return false, fmt.Errorf("failed to update task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update task: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a task scoped by project and reports whether a row was
// removed.
func (r *TaskRepo) Delete(ctx context.Context, taskID, projectID int64) (bool, error) {
	query := `DELETE FROM tasks WHERE id = $1 AND project_id = $2`
	res, err := r.db.ExecContext(ctx, query, taskID, projectID)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	return affected > 0, nil
}

// DeleteByProject removes every task under the project and returns the
// number of rows removed.
func (r *TaskRepo) DeleteByProject(ctx context.Context, projectID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = $1`, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete project tasks: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete project tasks: %w", err)
	}
	return affected, nil
}

// ListDueSoon returns unfinished tasks due within the window, joined with
// project and owner details for reminder mails.
func (r *TaskRepo) ListDueSoon(ctx context.Context, within time.Duration) ([]models.DueTask, error) {
	query := `
		SELECT t.id, t.title, t.due_date, p.name, u.username, u.email
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		JOIN users u ON u.id = p.user_id
		WHERE t.status <> 'Completed'
		  AND t.due_date BETWEEN NOW() AND NOW() + make_interval(secs => $1)
		ORDER BY t.due_date`
	rows, err := r.db.QueryContext(ctx, query, within.Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to list due tasks: %w", err)
	}
	defer rows.Close()

	due := []models.DueTask{}
	for rows.Next() {
		var d models.DueTask
		if err := rows.Scan(&d.TaskID, &d.Title, &d.DueDate, &d.ProjectName, &d.Username, &d.Email); err != nil {
			return nil, fmt.Errorf("failed to scan due task: %w", err)
		}
		due = append(due, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list due tasks: %w", err)
	}
	return due, nil
}
