package models

import "time"

// TaskItem belongs to a project and carries no owner of its own; access
// always goes through the owning project. Status is free-form text
// ("Pending", "In Progress", "Completed", "Unassigned" by convention).
type TaskItem struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"due_date"`
}

// DueTask is a reminder row: a task nearing its due date joined with the
// project name and the owner's contact details.
type DueTask struct {
	TaskID      int64
	Title       string
	DueDate     time.Time
	ProjectName string
	Username    string
	Email       string
}
