// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the task list and creation form, forwards user actions to the
// tasklist client and repaints on every state change. All UI strings are
// localized via Localization.
package ui
