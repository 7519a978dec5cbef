// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ytget/tasklist/internal/model"
)

// ErrNotFound is returned when a task is not found.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of api.TaskService for testing.
type FakeService struct {
	mu     sync.Mutex
	tasks  []model.Task
	nextID int
	calls  []string

	// Error injection for testing
	ListTasksErr    error
	CreateTaskErr   error
	SetCompletedErr error
	DeleteTaskErr   error

	// ForceCompleted, when set, is echoed by SetCompleted regardless of the request.
	ForceCompleted *bool

	// BeforeReply runs before a successful reply is returned (while no lock is held).
	BeforeReply func(op string)
}

// NewFakeService creates a FakeService holding the given tasks.
func NewFakeService(tasks ...model.Task) *FakeService {
	f := &FakeService{}
	f.tasks = append(f.tasks, tasks...)
	return f
}

// Calls returns the operations received so far, e.g. "update:2".
func (f *FakeService) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// Stored returns the backend-side tasks.
func (f *FakeService) Stored() []model.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

func (f *FakeService) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *FakeService) reply(op string) {
	if f.BeforeReply != nil {
		f.BeforeReply(op)
	}
}

// ListTasks implements api.TaskService.
func (f *FakeService) ListTasks(ctx context.Context) ([]model.Task, error) {
	f.record("list")
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.reply("list")
	return f.Stored(), nil
}

// CreateTask implements api.TaskService.
func (f *FakeService) CreateTask(ctx context.Context, draft model.Draft) (model.Task, error) {
	f.record("create:" + draft.Title)
	if f.CreateTaskErr != nil {
		return model.Task{}, f.CreateTaskErr
	}
	if err := ctx.Err(); err != nil {
		return model.Task{}, err
	}

	f.mu.Lock()
	f.nextID++
	task := model.Task{
		ID:          fmt.Sprintf("task-%d", f.nextID),
		Title:       draft.Title,
		Description: draft.Description,
	}
	f.tasks = append(f.tasks, task)
	f.mu.Unlock()

	f.reply("create")
	return task, nil
}

// SetCompleted implements api.TaskService.
func (f *FakeService) SetCompleted(ctx context.Context, id string, completed bool) (model.Task, error) {
	f.record("update:" + id)
	if f.SetCompletedErr != nil {
		return model.Task{}, f.SetCompletedErr
	}
	if err := ctx.Err(); err != nil {
		return model.Task{}, err
	}
	if f.ForceCompleted != nil {
		completed = *f.ForceCompleted
	}

	f.mu.Lock()
	var (
		task  model.Task
		found bool
	)
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Completed = completed
			task, found = f.tasks[i], true
			break
		}
	}
	f.mu.Unlock()

	if !found {
		return model.Task{}, ErrNotFound
	}
	f.reply("update")
	return task, nil
}

// DeleteTask implements api.TaskService.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	f.record("delete:" + id)
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	found := false
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			found = true
			break
		}
	}
	f.mu.Unlock()

	if !found {
		return ErrNotFound
	}
	f.reply("delete")
	return nil
}
