package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/tasklist/internal/config"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings) {
	t.Helper()
	t.Setenv(config.EnvAPIBaseURL, "")
	t.Setenv(config.EnvAPIToken, "")
	t.Setenv(config.EnvMetricsAddr, "")

	app := test.NewApp()
	t.Cleanup(app.Quit)
	settings := config.NewSettings(app)
	settings.SetLanguage("en")

	sd := NewSettingsDialog(settings, newEnglishLocalization(), app.NewWindow("test"), nil)
	sd.loadCurrentSettings()
	return sd, settings
}

func TestSettingsDialog_LoadsCurrentValues(t *testing.T) {
	sd, _ := newTestSettingsDialog(t)

	assert.Equal(t, config.DefaultAPIBaseURL, sd.baseURLEntry.Text)
	assert.Equal(t, "10", sd.timeoutEntry.Text)
	assert.Equal(t, "", sd.tokenEntry.Text)
	assert.Equal(t, "English", sd.languageSelect.Selected)
}

func TestSettingsDialog_Save(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.baseURLEntry.SetText("https://tasks.example.com")
	sd.tokenEntry.SetText("secret")
	sd.timeoutEntry.SetText("500")
	sd.metricsEntry.SetText("127.0.0.1:9100")
	sd.languageSelect.SetSelected("Español")

	require.NoError(t, sd.save())

	assert.Equal(t, "https://tasks.example.com", settings.GetAPIBaseURL())
	assert.Equal(t, "secret", settings.GetAPIToken())
	assert.Equal(t, config.MaxRequestTimeout, settings.GetRequestTimeoutSeconds())
	assert.Equal(t, "127.0.0.1:9100", settings.GetMetricsAddr())
	assert.Equal(t, "es", settings.GetLanguage())
}

func TestSettingsDialog_InvalidURLStoresNothing(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.baseURLEntry.SetText("not a url")
	sd.tokenEntry.SetText("secret")

	err := sd.save()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid backend URL")
	assert.Equal(t, config.DefaultAPIBaseURL, settings.GetAPIBaseURL())
	assert.Equal(t, "", settings.GetAPIToken())
}

func TestSettingsDialog_ConfirmRunsCallback(t *testing.T) {
	sd, _ := newTestSettingsDialog(t)
	called := false
	sd.onSaved = func() { called = true }

	sd.onConfirm(false)
	assert.False(t, called)

	sd.onConfirm(true)
	assert.True(t, called)
}

func TestSettingsDialog_EnvironmentValuesAreNotPersisted(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)
	settings.SetAPIToken("stored-token")

	t.Setenv(config.EnvAPIBaseURL, "https://env.example.com")
	t.Setenv(config.EnvAPIToken, "env-secret")
	t.Setenv(config.EnvMetricsAddr, ":9300")
	sd.loadCurrentSettings()

	assert.Equal(t, "https://env.example.com", sd.baseURLEntry.Text)
	assert.True(t, sd.baseURLEntry.Disabled())
	assert.True(t, sd.tokenEntry.Disabled())
	assert.True(t, sd.metricsEntry.Disabled())
	assert.False(t, sd.timeoutEntry.Disabled())

	// Only the language changes.
	sd.languageSelect.SetSelected("Español")
	require.NoError(t, sd.save())

	t.Setenv(config.EnvAPIBaseURL, "")
	t.Setenv(config.EnvAPIToken, "")
	t.Setenv(config.EnvMetricsAddr, "")

	assert.Equal(t, config.DefaultAPIBaseURL, settings.GetAPIBaseURL())
	assert.Equal(t, "stored-token", settings.GetAPIToken())
	assert.Equal(t, "", settings.GetMetricsAddr())
	assert.Equal(t, "es", settings.GetLanguage())
}

func TestSettingsDialog_ReloadEnablesFieldsWithoutEnvironment(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)
	settings.SetAPIBaseURL("https://prefs.example.com")

	t.Setenv(config.EnvAPIBaseURL, "https://env.example.com")
	sd.loadCurrentSettings()
	require.True(t, sd.baseURLEntry.Disabled())

	t.Setenv(config.EnvAPIBaseURL, "")
	sd.loadCurrentSettings()

	assert.False(t, sd.baseURLEntry.Disabled())
	assert.Equal(t, "https://prefs.example.com", sd.baseURLEntry.Text)
}
