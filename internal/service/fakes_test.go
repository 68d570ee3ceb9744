package service

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ivmart/tracker-service/internal/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeUserRepo struct {
	getOut *models.User
	getErr error

	createErr   error
	createCalls int
	created     *models.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = 1
	user.CreatedAt = time.Now()
	f.created = user
	return nil
}

func (f *fakeUserRepo) GetByUsername(context.Context, string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUserRepo) GetByID(context.Context, int64) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeProjectRepo struct {
	listOut []models.Project
	listErr error

	getOut *models.Project
	getErr error

	createErr error
	created   *models.Project

	updateOut bool
	updateErr error
	updated   *models.Project

	deleteOut bool
	deleteErr error
}

func (f *fakeProjectRepo) ListByOwner(context.Context, int64) ([]models.Project, error) {
	return f.listOut, f.listErr
}

func (f *fakeProjectRepo) GetByID(context.Context, int64, int64) (*models.Project, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeProjectRepo) Create(_ context.Context, project *models.Project) error {
	if f.createErr != nil {
		return f.createErr
	}
	project.ID = 1
	project.CreatedAt = time.Now()
	f.created = project
	return nil
}

func (f *fakeProjectRepo) Update(_ context.Context, project *models.Project) (bool, error) {
	f.updated = project
	return f.updateOut, f.updateErr
}

func (f *fakeProjectRepo) Delete(context.Context, int64, int64) (bool, error) {
	return f.deleteOut, f.deleteErr
}

// fakeTaskRepo records every call so tests can assert the task store was
// never touched when ownership checks fail.
type fakeTaskRepo struct {
	calls []string

	listOut []models.TaskItem

	getOut *models.TaskItem
	getErr error

	createErr error
	created   *models.TaskItem

	updateOut bool
	updated   *models.TaskItem

	deleteOut bool

	deleteByProjectOut int64
	deleteByProjectErr error
	deleteByProjectID  int64

	dueOut []models.DueTask
	dueErr error
}

func (f *fakeTaskRepo) ListByProject(context.Context, int64) ([]models.TaskItem, error) {
	f.calls = append(f.calls, "ListByProject")
	return f.listOut, nil
}

func (f *fakeTaskRepo) GetByID(context.Context, int64, int64) (*models.TaskItem, error) {
	f.calls = append(f.calls, "GetByID")
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeTaskRepo) Create(_ context.Context, task *models.TaskItem) error {
	f.calls = append(f.calls, "Create")
	if f.createErr != nil {
		return f.createErr
	}
	task.ID = 1
	f.created = task
	return nil
}

func (f *fakeTaskRepo) Update(_ context.Context, task *models.TaskItem) (bool, error) {
	f.calls = append(f.calls, "Update")
	f.updated = task
	return f.updateOut, nil
}

func (f *fakeTaskRepo) Delete(context.Context, int64, int64) (bool, error) {
	f.calls = append(f.calls, "Delete")
	return f.deleteOut, nil
}

func (f *fakeTaskRepo) DeleteByProject(_ context.Context, projectID int64) (int64, error) {
	f.calls = append(f.calls, "DeleteByProject")
	f.deleteByProjectID = projectID
	return f.deleteByProjectOut, f.deleteByProjectErr
}

func (f *fakeTaskRepo) ListDueSoon(context.Context, time.Duration) ([]models.DueTask, error) {
	f.calls = append(f.calls, "ListDueSoon")
	return f.dueOut, f.dueErr
}
