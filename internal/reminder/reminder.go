// Package reminder runs the scheduled sweep that mails owners about tasks
// nearing their due date.
package reminder

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ivmart/tracker-service/internal/models"
)

// TaskSource lists tasks due within a window.
type TaskSource interface {
	ListDueSoon(ctx context.Context, within time.Duration) ([]models.DueTask, error)
}

// Mailer sends a single reminder mail.
type Mailer interface {
	SendDueTaskReminder(to, username, taskTitle, projectName string, dueDate time.Time) error
}

// Job is a cron job sweeping for due tasks. A failed send is logged and
// skipped; the sweep itself never brings the process down.
type Job struct {
	tasks  TaskSource
	mailer Mailer
	window time.Duration
	log    *logrus.Logger
}

// NewJob creates a reminder job for tasks due within the window.
func NewJob(tasks TaskSource, mailer Mailer, window time.Duration, log *logrus.Logger) *Job {
	return &Job{tasks: tasks, mailer: mailer, window: window, log: log}
}

// Run performs one sweep. It satisfies cron.Job.
func (j *Job) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	due, err := j.tasks.ListDueSoon(ctx, j.window)
	if err != nil {
		j.log.Errorf("Reminder sweep failed: %v", err)
		return
	}

	sent := 0
	for _, t := range due {
		if t.Email == "" {
			continue
		}
		if err := j.mailer.SendDueTaskReminder(t.Email, t.Username, t.Title, t.ProjectName, t.DueDate); err != nil {
			j.log.Errorf("Failed to send reminder for task %d: %v", t.TaskID, err)
			continue
		}
		sent++
	}
	j.log.Infof("Reminder sweep finished: %d due tasks, %d emails sent", len(due), sent)
}
