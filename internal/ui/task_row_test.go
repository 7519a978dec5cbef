package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/tasklist/internal/model"
)

func newEnglishLocalization() *Localization {
	l := NewLocalization()
	l.SetLanguage("en")
	return l
}

func TestTaskRow_Pending(t *testing.T) {
	test.NewApp()
	row := NewTaskRow(model.Task{ID: "1", Title: "Buy milk", Description: "two litres"}, newEnglishLocalization())

	assert.Equal(t, "Buy milk", row.titleLabel.Text)
	assert.Equal(t, "two litres", row.descriptionLabel.Text)
	assert.True(t, row.descriptionLabel.Visible())
	assert.Contains(t, row.statusLabel.Text, "Pending")
	assert.Equal(t, widget.DangerImportance, row.statusLabel.Importance)
	assert.Equal(t, "Mark as completed", row.toggleBtn.Text)
	assert.Equal(t, IconDelete+" Delete", row.deleteBtn.Text)
	assert.Equal(t, widget.DangerImportance, row.deleteBtn.Importance)
}

func TestTaskRow_Completed(t *testing.T) {
	test.NewApp()
	row := NewTaskRow(model.Task{ID: "1", Title: "Buy milk", Completed: true}, newEnglishLocalization())

	assert.Contains(t, row.statusLabel.Text, "Completed")
	assert.Equal(t, widget.SuccessImportance, row.statusLabel.Importance)
	assert.Equal(t, "Mark as pending", row.toggleBtn.Text)
	assert.Equal(t, widget.MediumImportance, row.toggleBtn.Importance)
	assert.False(t, row.descriptionLabel.Visible())
}

func TestTaskRow_FlattensMultilineText(t *testing.T) {
	test.NewApp()
	row := NewTaskRow(model.Task{ID: "1", Title: "line one\nline two", Description: "a\r\nb"}, newEnglishLocalization())

	assert.Equal(t, "line one line two", row.titleLabel.Text)
	assert.NotContains(t, row.descriptionLabel.Text, "\n")
}

func TestTaskRow_UpdateTask(t *testing.T) {
	test.NewApp()
	row := NewTaskRow(model.Task{ID: "1", Title: "Buy milk"}, newEnglishLocalization())

	row.UpdateTask(model.Task{ID: "1", Title: "Buy milk", Completed: true})

	assert.True(t, row.Task().Completed)
	assert.Contains(t, row.statusLabel.Text, "Completed")
	assert.Equal(t, "Mark as pending", row.toggleBtn.Text)
}

func TestTaskRow_Callbacks(t *testing.T) {
	test.NewApp()
	row := NewTaskRow(model.Task{ID: "7", Title: "Buy milk", Completed: true}, newEnglishLocalization())

	var (
		toggledID        string
		toggledCompleted bool
		deletedID        string
	)
	row.SetCallbacks(
		func(id string, completed bool) { toggledID, toggledCompleted = id, completed },
		func(id string) { deletedID = id },
	)

	test.Tap(row.toggleBtn)
	assert.Equal(t, "7", toggledID)
	assert.True(t, toggledCompleted, "toggle reports the state the row was showing")

	test.Tap(row.deleteBtn)
	assert.Equal(t, "7", deletedID)
}

func TestTaskRow_CallbacksFollowUpdatedTask(t *testing.T) {
	test.NewApp()
	row := NewTaskRow(model.Task{}, newEnglishLocalization())

	var got string
	row.SetCallbacks(nil, func(id string) { got = id })
	row.UpdateTask(model.Task{ID: "42", Title: "recycled row"})

	test.Tap(row.deleteBtn)
	assert.Equal(t, "42", got)

	// Tapping without a callback is a no-op.
	test.Tap(row.toggleBtn)
}

func TestTaskRow_Spanish(t *testing.T) {
	test.NewApp()
	l := NewLocalization()
	l.SetLanguage("es")
	row := NewTaskRow(model.Task{ID: "1", Title: "Comprar pan"}, l)

	assert.Contains(t, row.statusLabel.Text, "Pendiente")
	assert.Equal(t, "Marcar como Completada", row.toggleBtn.Text)
	assert.Equal(t, IconDelete+" Eliminar", row.deleteBtn.Text)
}
