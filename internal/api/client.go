package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/ytget/tasklist/internal/model"
)

const (
	// DefaultTimeout is the per-request timeout when none is configured.
	DefaultTimeout = 10 * time.Second

	// RequestIDHeader carries a fresh UUID on every request.
	RequestIDHeader = "X-Request-ID"

	tasksPath = "tasks"
)

// Operation names used in errors and metric labels
const (
	OpList   = "list"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Client implements TaskService over the backend's REST API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	metrics    *Metrics

	// option state, applied once in NewClient
	base    *http.Client
	token   string
	timeout time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client (for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.base = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithToken sends the token as a bearer credential. Empty disables it.
func WithToken(token string) Option {
	return func(c *Client) { c.token = strings.TrimSpace(token) }
}

// WithMetrics records every request in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a client for the backend rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: missing host", baseURL)
	}

	c := &Client{baseURL: u, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(c)
	}

	hc := &http.Client{}
	if c.base != nil {
		copied := *c.base
		hc = &copied
	}
	if c.token != "" {
		transport := hc.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		hc.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.token, TokenType: "Bearer"}),
			Base:   transport,
		}
	}
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	c.httpClient = hc

	return c, nil
}

// BaseURL returns the backend root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateRequest struct {
	Completed bool `json:"completed"`
}

// ListTasks returns all tasks in backend order.
func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(ctx, OpList, http.MethodGet, c.collectionPath(), nil, &tasks, nil); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// CreateTask creates a task from the draft.
func (c *Client) CreateTask(ctx context.Context, draft model.Draft) (model.Task, error) {
	var task model.Task
	body := createRequest{Title: draft.Title, Description: draft.Description}
	hasID := func() error {
		if task.ID == "" {
			return fmt.Errorf("%w: created task has no id", errMalformed)
		}
		return nil
	}
	if err := c.do(ctx, OpCreate, http.MethodPost, c.collectionPath(), body, &task, hasID); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// SetCompleted updates the completion flag of a task.
func (c *Client) SetCompleted(ctx context.Context, id string, completed bool) (model.Task, error) {
	var task model.Task
	if err := c.do(ctx, OpUpdate, http.MethodPut, c.itemPath(id), updateRequest{Completed: completed}, &task, nil); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, OpDelete, http.MethodDelete, c.itemPath(id), nil, nil, nil)
}

func (c *Client) collectionPath() string {
	return c.baseURL.JoinPath(tasksPath).String()
}

func (c *Client) itemPath(id string) string {
	return c.baseURL.JoinPath(tasksPath, url.PathEscape(id)).String()
}

// do sends one request and records it. out may be nil to discard the body.
// check, when set, validates the decoded body; its failure keeps the status.
func (c *Client) do(ctx context.Context, op, method, target string, body, out any, check func() error) error {
	start := time.Now()
	status, err := c.roundTrip(ctx, method, target, body, out)
	if err == nil && check != nil {
		err = check()
	}
	if err != nil {
		c.metrics.observe(op, OutcomeFailure, time.Since(start))
		return c.fail(op, method, target, status, err)
	}
	c.metrics.observe(op, OutcomeSuccess, time.Since(start))
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, target string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		return resp.StatusCode, err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %v", errMalformed, err)
	}
	return resp.StatusCode, nil
}

func (c *Client) fail(op, method, target string, status int, err error) *RequestFailure {
	path := target
	if u, perr := url.Parse(target); perr == nil {
		path = u.EscapedPath()
	}
	return &RequestFailure{Op: op, Method: method, Path: path, Status: status, Err: err}
}
