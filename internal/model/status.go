package model

// Status represents the display state of a task
type Status string

const (
	// StatusPending means the task is not completed yet
	StatusPending Status = "Pending"

	// StatusCompleted means the task was marked as completed
	StatusCompleted Status = "Completed"
)

// StatusOf maps the completion flag to a Status
func StatusOf(completed bool) Status {
	if completed {
		return StatusCompleted
	}
	return StatusPending
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsFinished returns true if the task is completed
func (s Status) IsFinished() bool {
	return s == StatusCompleted
}

// Toggled returns the status a toggle request asks the backend for
func (s Status) Toggled() Status {
	return StatusOf(!s.IsFinished())
}
