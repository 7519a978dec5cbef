package tasklist

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/ytget/tasklist/internal/api"
	"github.com/ytget/tasklist/internal/model"
)

// Client owns the in-memory task list and the creation draft. The tasks slice
// is only mutated by the response handlers of LoadTasks, CreateTask,
// ToggleComplete and DeleteTask, and only after the backend confirmed.
type Client struct {
	svc    api.TaskService
	logger *log.Logger

	// collapses concurrent toggle/delete requests for the same task
	flights singleflight.Group

	// canceled by Close
	life   context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	tasks    []model.Task
	draft    model.Draft
	closed   bool
	onChange func()
}

// Option configures a Client
type Option func(*Client)

// WithLogger sets the diagnostic logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client backed by svc.
func New(svc api.TaskService, opts ...Option) *Client {
	c := &Client{
		svc:    svc,
		logger: log.Default(),
		tasks:  []model.Task{},
	}
	c.life, c.cancel = context.WithCancel(context.Background())
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetChangeCallback sets the function called after every state change.
// It runs on the goroutine that applied the change, without locks held.
func (c *Client) SetChangeCallback(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Tasks returns a copy of the current task list.
func (c *Client) Tasks() []model.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Draft returns the current form state.
func (c *Client) Draft() model.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// SetDraft replaces the form state. Tasks are not affected.
func (c *Client) SetDraft(d model.Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = d
}

// LoadTasks fetches the whole collection and replaces the local list.
func (c *Client) LoadTasks(ctx context.Context) {
	ctx, done := c.bind(ctx)
	defer done()

	tasks, err := c.svc.ListTasks(ctx)
	if err != nil {
		c.logger.Printf("Error loading tasks: %v", err)
		return
	}

	c.apply(func() {
		c.tasks = uniqueByID(tasks)
	})
}

// CreateTask sends the draft and appends the created task.
// On success the draft is reset; on failure it is left as entered.
func (c *Client) CreateTask(ctx context.Context, draft model.Draft) {
	ctx, done := c.bind(ctx)
	defer done()

	task, err := c.svc.CreateTask(ctx, draft)
	if err != nil {
		c.logger.Printf("Error creating task %q: %v", draft.Title, err)
		return
	}

	c.apply(func() {
		if i := c.indexOf(task.ID); i >= 0 {
			c.tasks[i] = task
		} else {
			c.tasks = append(c.tasks, task)
		}
		c.draft = model.Draft{}
	})
}

// ToggleComplete asks the backend for !currentCompleted and stores the
// completion flag the backend echoes. A toggle issued while another one for
// the same id is in flight joins it instead of sending a second request.
func (c *Client) ToggleComplete(ctx context.Context, id string, currentCompleted bool) {
	_, _, _ = c.flights.Do("toggle:"+id, func() (any, error) {
		ctx, done := c.bind(ctx)
		defer done()

		task, err := c.svc.SetCompleted(ctx, id, !currentCompleted)
		if err != nil {
			c.logger.Printf("Error updating task %s: %v", id, err)
			return nil, err
		}

		c.apply(func() {
			if i := c.indexOf(id); i >= 0 {
				c.tasks[i].Completed = task.Completed
			}
		})
		return nil, nil
	})
}

// DeleteTask deletes a task and removes it from the local list.
func (c *Client) DeleteTask(ctx context.Context, id string) {
	_, _, _ = c.flights.Do("delete:"+id, func() (any, error) {
		ctx, done := c.bind(ctx)
		defer done()

		if err := c.svc.DeleteTask(ctx, id); err != nil {
			c.logger.Printf("Error deleting task %s: %v", id, err)
			return nil, err
		}

		c.apply(func() {
			if i := c.indexOf(id); i >= 0 {
				c.tasks = append(c.tasks[:i:i], c.tasks[i+1:]...)
			}
		})
		return nil, nil
	})
}

// Close cancels requests in flight. Responses arriving afterwards are dropped.
func (c *Client) Close() {
	c.mu.Lock()
	c.closed = true
	c.onChange = nil
	c.mu.Unlock()
	c.cancel()
}

// bind derives a request context that also ends when the client is closed.
func (c *Client) bind(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.life, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// apply runs mutate under the lock and notifies the change callback.
func (c *Client) apply(mutate func()) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	mutate()
	notify := c.onChange
	c.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// indexOf must be called with mu held.
func (c *Client) indexOf(id string) int {
	for i, t := range c.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func uniqueByID(tasks []model.Task) []model.Task {
	seen := make(map[string]struct{}, len(tasks))
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}
