package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalization_Default(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "Task List", l.GetText(KeyAppTitle))
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "spanish", code: "es", want: "es"},
		{name: "english", code: "en", want: "en"},
		{name: "unsupported falls back to english", code: "xx", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage("es")
			l.SetLanguage(tt.code)
			assert.Equal(t, tt.want, l.GetCurrentLanguage())
		})
	}
}

func TestLocalization_SystemPicksSupportedLanguage(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("system")

	assert.Contains(t, l.GetAvailableLanguages(), l.GetCurrentLanguage())
}

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("es")

	assert.Equal(t, "Lista de Tareas", l.GetText(KeyAppTitle))
	assert.Equal(t, "Crear Tarea", l.GetText(KeyCreateTask))
	assert.Equal(t, "missing_key", l.GetText("missing_key"))
}

func TestLocalization_AllKeysTranslated(t *testing.T) {
	l := NewLocalization()

	for key := range l.texts["en"] {
		_, ok := l.texts["es"][key]
		assert.True(t, ok, "missing spanish text for %s", key)
	}
	assert.Len(t, l.texts["es"], len(l.texts["en"]))
}

func TestLocalization_SupportedBase(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{locale: "es-ES", want: "es"},
		{locale: "es-419", want: "es"},
		{locale: "es_MX.UTF-8", want: "es"},
		{locale: "es", want: "es"},
		{locale: "en-US", want: "en"},
		{locale: "en", want: "en"},
		{locale: "fr-FR", want: "en"},
		{locale: "", want: "en"},
		{locale: "not a locale", want: "en"},
	}

	l := NewLocalization()
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, l.supportedBase(tt.locale))
		})
	}
}
