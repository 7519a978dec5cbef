package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tasklist/internal/model"
)

// TaskRow renders one task: title, description, status and its two actions
type TaskRow struct {
	widget.BaseWidget

	task         model.Task
	localization *Localization

	// UI components
	titleLabel       *widget.Label
	descriptionLabel *widget.Label
	statusLabel      *widget.Label

	// Action buttons
	toggleBtn *widget.Button
	deleteBtn *widget.Button

	// Callbacks
	onToggle func(id string, completed bool)
	onDelete func(id string)
}

// NewTaskRow creates a new task row widget
func NewTaskRow(task model.Task, localization *Localization) *TaskRow {
	tr := &TaskRow{
		task:         task,
		localization: localization,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	tr.updateFromTask()
	return tr
}

// SetCallbacks sets the action callbacks. onToggle receives the completion
// flag the row was showing when tapped.
func (tr *TaskRow) SetCallbacks(onToggle func(id string, completed bool), onDelete func(id string)) {
	tr.onToggle = onToggle
	tr.onDelete = onDelete
}

// UpdateTask updates the row with new task data
func (tr *TaskRow) UpdateTask(task model.Task) {
	tr.task = task
	tr.updateFromTask()
	tr.Refresh()
}

// Task returns the task currently shown
func (tr *TaskRow) Task() model.Task {
	return tr.task
}

func (tr *TaskRow) createUI() {
	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	tr.descriptionLabel = widget.NewLabel("")
	tr.descriptionLabel.Truncation = fyne.TextTruncateEllipsis

	tr.statusLabel = widget.NewLabel("")
	tr.statusLabel.Alignment = fyne.TextAlignTrailing
	tr.statusLabel.TextStyle = fyne.TextStyle{Bold: true}

	tr.toggleBtn = widget.NewButton("", func() {
		// Read the current task, not the one captured at creation.
		current := tr.task
		if tr.onToggle == nil {
			log.Printf("onToggle callback is nil for task %s", current.ID)
			return
		}
		tr.onToggle(current.ID, current.Completed)
	})

	tr.deleteBtn = widget.NewButton("", func() {
		current := tr.task
		if tr.onDelete == nil {
			log.Printf("onDelete callback is nil for task %s", current.ID)
			return
		}
		tr.onDelete(current.ID)
	})
	tr.deleteBtn.Importance = widget.DangerImportance
}

func (tr *TaskRow) updateFromTask() {
	tr.titleLabel.SetText(tr.task.DisplayTitle())

	desc := tr.task.DisplayDescription()
	tr.descriptionLabel.SetText(desc)
	if desc == "" {
		tr.descriptionLabel.Hide()
	} else {
		tr.descriptionLabel.Show()
	}

	status := tr.task.Status()
	if status.IsFinished() {
		tr.statusLabel.Importance = widget.SuccessImportance
		tr.statusLabel.SetText(IconCheck + " " + tr.localization.GetText(KeyCompleted))
	} else {
		tr.statusLabel.Importance = widget.DangerImportance
		tr.statusLabel.SetText(IconPending + " " + tr.localization.GetText(KeyPending))
	}

	// The toggle caption names the state a tap asks for
	switch status.Toggled() {
	case model.StatusCompleted:
		tr.toggleBtn.SetText(tr.localization.GetText(KeyMarkCompleted))
		tr.toggleBtn.Importance = widget.HighImportance
	default:
		tr.toggleBtn.SetText(tr.localization.GetText(KeyMarkPending))
		tr.toggleBtn.Importance = widget.MediumImportance
	}

	tr.deleteBtn.SetText(IconDelete + " " + tr.localization.GetText(KeyDelete))
}

// CreateRenderer creates the widget renderer
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	return &taskRowRenderer{taskRow: tr}
}

type taskRowRenderer struct {
	taskRow *TaskRow
	layout  *fyne.Container
}

// Layout arranges the components
func (r *taskRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *taskRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	return r.layout.MinSize().Max(fyne.NewSize(RowMinWidth, RowMinHeight))
}

// Refresh refreshes the renderer
func (r *taskRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *taskRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *taskRowRenderer) Destroy() {}

func (r *taskRowRenderer) createLayout() {
	tr := r.taskRow

	// Fix the status column width so rows line up
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(StatusLabelWidth, tr.statusLabel.MinSize().Height))
	status := container.NewStack(spacer, tr.statusLabel)

	text := container.NewVBox(tr.titleLabel, tr.descriptionLabel)
	actions := container.NewHBox(status, tr.toggleBtn, tr.deleteBtn)

	r.layout = container.NewVBox(
		container.NewBorder(nil, nil, nil, actions, text),
		widget.NewSeparator(),
	)
}
