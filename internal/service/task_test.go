package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivmart/tracker-service/internal/apperr"
	"github.com/ivmart/tracker-service/internal/models"
	"github.com/ivmart/tracker-service/internal/repository"
)

func ownedProject() *fakeProjectRepo {
	return &fakeProjectRepo{getOut: &models.Project{ID: 1, Name: "Demo", UserID: 5}}
}

func TestTaskOperations_ForeignProjectNeverTouchesTaskStore(t *testing.T) {
	due := time.Now().Add(24 * time.Hour)

	ops := map[string]func(s *TaskService) error{
		"List": func(s *TaskService) error {
			_, err := s.List(context.Background(), 1, 99)
			return err
		},
		"GetByID": func(s *TaskService) error {
			_, err := s.GetByID(context.Background(), 1, 1, 99)
			return err
		},
		"Create": func(s *TaskService) error {
			_, err := s.Create(context.Background(), 1, "T1", "", "Pending", due, 99)
			return err
		},
		"Update": func(s *TaskService) error {
			_, err := s.Update(context.Background(), 1, "T1", "", "Pending", due, 1, 99)
			return err
		},
		"Delete": func(s *TaskService) error {
			_, err := s.Delete(context.Background(), 1, 1, 99)
			return err
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			projects := &fakeProjectRepo{getErr: repository.ErrNotFound}
			tasks := &fakeTaskRepo{}
			s := NewTaskService(tasks, projects, testLogger())

			err := op(s)
			require.Error(t, err)
			assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
			assert.Equal(t, "project not found", err.Error())
			assert.Empty(t, tasks.calls, "task store must not be invoked")
		})
	}
}

func TestTaskGetByID_MissingTaskHasDistinctMessage(t *testing.T) {
	tasks := &fakeTaskRepo{getErr: repository.ErrNotFound}
	s := NewTaskService(tasks, ownedProject(), testLogger())

	_, err := s.GetByID(context.Background(), 9, 1, 5)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "task not found", err.Error())
}

func TestTaskCreate_AssignsProjectAndID(t *testing.T) {
	tasks := &fakeTaskRepo{}
	s := NewTaskService(tasks, ownedProject(), testLogger())

	due := time.Now().Add(24 * time.Hour)
	task, err := s.Create(context.Background(), 1, "T1", "", "Pending", due, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, int64(1), task.ProjectID)
	assert.Equal(t, "T1", task.Title)
	assert.Equal(t, "Pending", task.Status)
}

func TestTaskUpdate_OverwritesAllMutableFields(t *testing.T) {
	tasks := &fakeTaskRepo{
		getOut:    &models.TaskItem{ID: 2, ProjectID: 1, Title: "old", Status: "Pending"},
		updateOut: true,
	}
	s := NewTaskService(tasks, ownedProject(), testLogger())

	due := time.Now().Add(48 * time.Hour)
	ok, err := s.Update(context.Background(), 2, "new", "d", "Completed", due, 1, 5)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NotNil(t, tasks.updated)
	assert.Equal(t, "new", tasks.updated.Title)
	assert.Equal(t, "Completed", tasks.updated.Status)
	assert.Equal(t, due, tasks.updated.DueDate)
}

func TestTaskUpdate_MissingTask(t *testing.T) {
	tasks := &fakeTaskRepo{getErr: repository.ErrNotFound}
	s := NewTaskService(tasks, ownedProject(), testLogger())

	_, err := s.Update(context.Background(), 2, "new", "d", "Completed", time.Now(), 1, 5)
	require.Error(t, err)
	assert.Equal(t, "task not found", err.Error())
}

func TestTaskDelete_MissingReturnsFalse(t *testing.T) {
	tasks := &fakeTaskRepo{deleteOut: false}
	s := NewTaskService(tasks, ownedProject(), testLogger())

	deleted, err := s.Delete(context.Background(), 9, 1, 5)
	require.NoError(t, err)
	assert.False(t, deleted)
}
