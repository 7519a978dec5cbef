package ui

import (
	"context"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tasklist/internal/config"
	"github.com/ytget/tasklist/internal/model"
	"github.com/ytget/tasklist/internal/tasklist"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	client       *tasklist.Client
	settings     *config.Settings
	localization *Localization

	heading          *widget.Label
	titleLabel       *widget.Label
	descriptionLabel *widget.Label
	titleEntry       *widget.Entry
	descriptionEntry *widget.Entry
	createBtn        *widget.Button
	taskList         *widget.List
	emptyLabel       *widget.Label

	// snapshot rendered by taskList, only touched on the main goroutine
	tasks []model.Task

	// runAsync starts a client operation; onMain runs a repaint on the UI goroutine
	runAsync func(func())
	onMain   func(func())
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, client *tasklist.Client, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		client:       client,
		settings:     settings,
		localization: localization,
		runAsync:     func(f func()) { go f() },
		onMain:       fyne.Do,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	client.SetChangeCallback(func() {
		ui.onMain(ui.refresh)
	})
	window.SetOnClosed(client.Close)

	ui.setupUI()
	return ui
}

// Start fetches the initial task list in the background
func (ui *RootUI) Start() {
	ui.runAsync(func() {
		ui.client.LoadTasks(context.Background())
	})
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.heading = widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.heading.SizeName = theme.SizeNameHeadingText

	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyTitle))
	ui.titleEntry = widget.NewEntry()
	ui.titleEntry.SetPlaceHolder(ui.localization.GetText(KeyTitlePlaceholder))
	ui.titleEntry.OnSubmitted = func(string) {
		ui.onCreateClick()
	}

	ui.descriptionLabel = widget.NewLabel(ui.localization.GetText(KeyDescription))
	ui.descriptionEntry = widget.NewMultiLineEntry()
	ui.descriptionEntry.SetPlaceHolder(ui.localization.GetText(KeyDescPlaceholder))
	ui.descriptionEntry.SetMinRowsVisible(DescriptionEntryMinRows)

	// Keep the client's draft in step with what is typed
	ui.titleEntry.OnChanged = func(string) { ui.client.SetDraft(ui.formDraft()) }
	ui.descriptionEntry.OnChanged = func(string) { ui.client.SetDraft(ui.formDraft()) }

	ui.createBtn = widget.NewButton(ui.localization.GetText(KeyCreateTask), ui.onCreateClick)
	ui.createBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	form := container.NewVBox(
		container.NewBorder(nil, nil, nil, settingsBtn, ui.heading),
		ui.titleLabel,
		ui.titleEntry,
		ui.descriptionLabel,
		ui.descriptionEntry,
		ui.createBtn,
		widget.NewSeparator(),
	)

	ui.taskList = widget.NewList(
		func() int {
			return len(ui.tasks)
		},
		func() fyne.CanvasObject { return ui.createTaskItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateTaskItem(id, obj) },
	)

	ui.emptyLabel = widget.NewLabelWithStyle(ui.localization.GetText(KeyNoTasks), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	content := container.NewBorder(
		form, // top
		nil,  // bottom
		nil,  // left
		nil,  // right
		container.NewStack(ui.taskList, container.NewVBox(ui.emptyLabel)),
	)

	ui.window.SetContent(content)
	ui.refresh()
}

func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText
	ui.window.SetTitle(t(KeyAppTitle))
	ui.heading.SetText(t(KeyAppTitle))
	ui.titleLabel.SetText(t(KeyTitle))
	ui.titleEntry.SetPlaceHolder(t(KeyTitlePlaceholder))
	ui.descriptionLabel.SetText(t(KeyDescription))
	ui.descriptionEntry.SetPlaceHolder(t(KeyDescPlaceholder))
	ui.createBtn.SetText(t(KeyCreateTask))
	ui.emptyLabel.SetText(t(KeyNoTasks))

	// Rows pick up new captions on refresh
	ui.taskList.Refresh()
}

func (ui *RootUI) formDraft() model.Draft {
	return model.Draft{Title: ui.titleEntry.Text, Description: ui.descriptionEntry.Text}
}

func (ui *RootUI) onCreateClick() {
	draft := ui.formDraft()
	if err := draft.Validate(); err != nil {
		ui.showPopUp(ui.localization.GetText(KeyTitleRequired))
		ui.window.Canvas().Focus(ui.titleEntry)
		return
	}

	ui.client.SetDraft(draft)
	ui.runAsync(func() {
		ui.client.CreateTask(context.Background(), draft)
	})
}

func (ui *RootUI) onToggleTask(id string, completed bool) {
	ui.runAsync(func() {
		ui.client.ToggleComplete(context.Background(), id, completed)
	})
}

func (ui *RootUI) onDeleteTask(id string) {
	ui.runAsync(func() {
		ui.client.DeleteTask(context.Background(), id)
	})
}

// refresh repaints from the client's current state. Must run on the main goroutine.
func (ui *RootUI) refresh() {
	ui.tasks = ui.client.Tasks()

	// Entries follow the draft so a successful create clears the form
	draft := ui.client.Draft()
	if ui.titleEntry.Text != draft.Title {
		ui.titleEntry.SetText(draft.Title)
	}
	if ui.descriptionEntry.Text != draft.Description {
		ui.descriptionEntry.SetText(draft.Description)
	}

	if len(ui.tasks) == 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}
	ui.taskList.Refresh()
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}).Show()
}

func (ui *RootUI) createTaskItem() fyne.CanvasObject {
	row := NewTaskRow(model.Task{}, ui.localization)
	row.SetCallbacks(ui.onToggleTask, ui.onDeleteTask)
	return row
}

func (ui *RootUI) updateTaskItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(ui.tasks) {
		return
	}

	row, ok := item.(*TaskRow)
	if !ok {
		log.Printf("Unexpected list item type %T", item)
		return
	}
	row.UpdateTask(ui.tasks[id])
}

// showPopUp shows a short message over the window and hides it after a moment
func (ui *RootUI) showPopUp(message string) {
	popUp := widget.NewPopUp(widget.NewLabel(message), ui.window.Canvas())
	popUp.ShowAtRelativePosition(fyne.NewPos(0, ui.titleEntry.MinSize().Height), ui.titleEntry)
	time.AfterFunc(PopUpAutoHide, func() {
		fyne.Do(popUp.Hide)
	})
}
