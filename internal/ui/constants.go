package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLanguage = "🌐"
	IconCheck    = "✓"
	IconPending  = "⏳"
	IconDelete   = "🗑"
)

// Layout sizing (TaskRow / lists / form)
const (
	StatusLabelWidth float32 = 110

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 64

	DescriptionEntryMinRows = 3

	WindowWidth  float32 = 720
	WindowHeight float32 = 560

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 360
)

// Popup behavior
const (
	PopUpAutoHide = 1500 * time.Millisecond
)
