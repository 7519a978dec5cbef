package ui

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tasklist/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	baseURLEntry   *widget.Entry
	tokenEntry     *widget.Entry
	timeoutEntry   *widget.Entry
	metricsEntry   *widget.Entry
	languageSelect *widget.Select

	// display name -> language code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were stored and may be nil.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)
	sd.baseURLEntry.Validator = config.ValidateAPIBaseURL

	sd.tokenEntry = widget.NewPasswordEntry()

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinRequestTimeout, config.MaxRequestTimeout))

	sd.metricsEntry = widget.NewEntry()
	sd.metricsEntry.SetPlaceHolder("127.0.0.1:9100")

	sd.languageCodes = make(map[string]string)
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
	}
	sd.languageSelect = widget.NewSelect(slices.Sorted(maps.Keys(sd.languageCodes)), nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyConnectionSection)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyBackendURL)+":"),
		sd.baseURLEntry,

		widget.NewLabel(t(KeyAPIToken)+":"),
		sd.tokenEntry,

		widget.NewLabel(t(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(t(KeyMetricsAddr)+":"),
		sd.metricsEntry,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyInterfaceSection)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onConfirm,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	// Fields set from the environment are shown read-only and never saved
	loadEntry(sd.baseURLEntry, config.KeyAPIBaseURL, sd.settings.GetAPIBaseURL(), sd.settings.StoredAPIBaseURL())
	loadEntry(sd.tokenEntry, config.KeyAPIToken, sd.settings.GetAPIToken(), sd.settings.StoredAPIToken())
	loadEntry(sd.metricsEntry, config.KeyMetricsAddr, sd.settings.GetMetricsAddr(), sd.settings.StoredMetricsAddr())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeoutSeconds()))

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
}

func (sd *SettingsDialog) onConfirm(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.save(); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved)+"\n"+sd.localization.GetText(KeyRestartRequired),
		sd.window,
	)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// save validates the form and stores it. Nothing is stored when the URL is
// invalid. Values overridden by the environment are left as stored.
func (sd *SettingsDialog) save() error {
	saveURL := !config.OverriddenByEnv(config.KeyAPIBaseURL)
	baseURL := strings.TrimSpace(sd.baseURLEntry.Text)
	if saveURL && baseURL != "" {
		if err := config.ValidateAPIBaseURL(baseURL); err != nil {
			return errors.New(sd.localization.GetText(KeyInvalidURL) + ": " + baseURL)
		}
	}
	if saveURL {
		sd.settings.SetAPIBaseURL(baseURL)
	}

	if !config.OverriddenByEnv(config.KeyAPIToken) {
		sd.settings.SetAPIToken(sd.tokenEntry.Text)
	}

	if timeout, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetRequestTimeoutSeconds(timeout)
	}

	if !config.OverriddenByEnv(config.KeyMetricsAddr) {
		sd.settings.SetMetricsAddr(sd.metricsEntry.Text)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
	return nil
}

// loadEntry shows effective when key is overridden by the environment and
// disables the entry; otherwise it shows the stored preference.
func loadEntry(e *widget.Entry, key, effective, stored string) {
	if config.OverriddenByEnv(key) {
		e.SetText(effective)
		e.Disable()
		return
	}
	e.SetText(stored)
	e.Enable()
}
