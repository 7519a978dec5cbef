package model

import (
	"errors"
	"strings"
)

// ErrTitleRequired is returned when a draft has no title
var ErrTitleRequired = errors.New("title is required")

// Task represents a single task owned by the backend
type Task struct {
	ID          string `json:"id"`          // assigned by the backend
	Title       string `json:"title"`       // required
	Description string `json:"description"` // optional, null decodes to ""
	Completed   bool   `json:"completed"`
}

// Draft is the unsaved state of the creation form
type Draft struct {
	Title       string
	Description string
}

// Status returns the display status derived from the completion flag
func (t Task) Status() Status {
	return StatusOf(t.Completed)
}

// DisplayTitle returns the title flattened to a single line
func (t Task) DisplayTitle() string {
	return flatten(t.Title)
}

// DisplayDescription returns the description flattened to a single line
func (t Task) DisplayDescription() string {
	return flatten(t.Description)
}

// Validate checks the required title field. Nothing else is validated.
func (d Draft) Validate() error {
	if d.Title == "" {
		return ErrTitleRequired
	}
	return nil
}

func flatten(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(s)
}
