package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ytget/tasklist/internal/model"
)

// RecordedRequest captures what the FakeBackend received.
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   map[string]any
}

// FakeBackend is an HTTP server exposing the /tasks resource from memory.
type FakeBackend struct {
	Server *httptest.Server

	mu       sync.Mutex
	tasks    []model.Task
	requests []RecordedRequest
	failWith int
	rawReply string
}

// NewFakeBackend starts a backend seeded with tasks. It is closed on test cleanup.
func NewFakeBackend(t *testing.T, tasks ...model.Task) *FakeBackend {
	t.Helper()

	b := &FakeBackend{}
	b.tasks = append(b.tasks, tasks...)

	r := chi.NewRouter()
	r.Use(b.record)
	r.Get("/tasks", b.listTasks)
	r.Post("/tasks", b.createTask)
	r.Get("/tasks/{id}", b.getTask)
	r.Put("/tasks/{id}", b.updateTask)
	r.Delete("/tasks/{id}", b.deleteTask)

	b.Server = httptest.NewServer(r)
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the server root.
func (b *FakeBackend) URL() string {
	return b.Server.URL
}

// FailWith makes every following request answer with status. 0 restores normal behavior.
func (b *FakeBackend) FailWith(status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failWith = status
}

// ReplyRaw makes every following request answer 200 with body verbatim. Empty restores normal behavior.
func (b *FakeBackend) ReplyRaw(body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rawReply = body
}

// Requests returns the requests received so far.
func (b *FakeBackend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]RecordedRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

// Tasks returns the stored tasks.
func (b *FakeBackend) Tasks() []model.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.Task, len(b.tasks))
	copy(out, b.tasks)
	return out
}

func (b *FakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := RecordedRequest{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone()}
		if r.Body != nil && r.ContentLength != 0 {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
				rec.Body = body
			}
		}

		b.mu.Lock()
		b.requests = append(b.requests, rec)
		failWith, raw := b.failWith, b.rawReply
		b.mu.Unlock()

		if failWith != 0 {
			writeJSON(w, failWith, map[string]string{"detail": http.StatusText(failWith)})
			return
		}
		if raw != "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(raw))
			return
		}

		// Handlers read the decoded body from the record.
		next.ServeHTTP(w, r.WithContext(withBody(r.Context(), rec.Body)))
	})
}

func (b *FakeBackend) listTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, b.Tasks())
}

func (b *FakeBackend) createTask(w http.ResponseWriter, r *http.Request) {
	body := bodyFrom(r.Context())
	title, _ := body["title"].(string)
	if title == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "title is required"})
		return
	}
	description, _ := body["description"].(string)
	completed, _ := body["completed"].(bool)

	task := model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Completed:   completed,
	}

	b.mu.Lock()
	b.tasks = append(b.tasks, task)
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, task)
}

func (b *FakeBackend) getTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, t := range b.Tasks() {
		if t.ID == id {
			writeJSON(w, http.StatusOK, t)
			return
		}
	}
	writeNotFound(w)
}

func (b *FakeBackend) updateTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	completed, ok := bodyFrom(r.Context())["completed"].(bool)
	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "completed is required"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			b.tasks[i].Completed = completed
			writeJSON(w, http.StatusOK, b.tasks[i])
			return
		}
	}
	writeNotFound(w)
}

func (b *FakeBackend) deleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, t := range b.tasks {
		if t.ID == id {
			b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
			writeJSON(w, http.StatusOK, t)
			return
		}
	}
	writeNotFound(w)
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "task not found"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
