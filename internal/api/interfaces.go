package api

import (
	"context"

	"github.com/ytget/tasklist/internal/model"
)

// TaskService defines the operations the backend exposes for tasks.
type TaskService interface {
	// ListTasks returns the whole collection in backend order.
	ListTasks(ctx context.Context) ([]model.Task, error)

	// CreateTask sends the draft and returns the task with its assigned ID.
	CreateTask(ctx context.Context, draft model.Draft) (model.Task, error)

	// SetCompleted updates the completion flag and returns the stored task.
	SetCompleted(ctx context.Context, id string, completed bool) (model.Task, error)

	// DeleteTask removes a task. The response body is ignored.
	DeleteTask(ctx context.Context, id string) error
}
