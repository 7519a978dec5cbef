package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyTitle             = "title"
	KeyTitlePlaceholder  = "title_placeholder"
	KeyDescription       = "description"
	KeyDescPlaceholder   = "description_placeholder"
	KeyCreateTask        = "create_task"
	KeyCompleted         = "completed"
	KeyPending           = "pending"
	KeyMarkCompleted     = "mark_completed"
	KeyMarkPending       = "mark_pending"
	KeyDelete            = "delete"
	KeyNoTasks           = "no_tasks"
	KeyTitleRequired     = "title_required"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyBackendURL        = "backend_url"
	KeyAPIToken          = "api_token"
	KeyRequestTimeout    = "request_timeout"
	KeyMetricsAddr       = "metrics_addr"
	KeyConnectionSection = "connection_section"
	KeyInterfaceSection  = "interface_section"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
	KeyInvalidURL        = "invalid_url"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the OS locale when it
// is supported and English otherwise.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = l.supportedBase(lang.SystemLocale().String())
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	} else if code != "" {
		l.currentLanguage = "en"
	}
}

// supportedBase maps a locale tag such as "es-ES" or "es_ES.UTF-8" to its base
// language when there are texts for it, and to English otherwise.
func (l *Localization) supportedBase(locale string) string {
	locale, _, _ = strings.Cut(locale, ".")
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	if _, exists := l.texts[base.String()]; exists {
		return base.String()
	}
	return "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"es": "Español",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Task List",
		KeyTitle:             "Title",
		KeyTitlePlaceholder:  "What needs to be done?",
		KeyDescription:       "Description",
		KeyDescPlaceholder:   "Optional details",
		KeyCreateTask:        "Create Task",
		KeyCompleted:         "Completed",
		KeyPending:           "Pending",
		KeyMarkCompleted:     "Mark as completed",
		KeyMarkPending:       "Mark as pending",
		KeyDelete:            "Delete",
		KeyNoTasks:           "No tasks yet",
		KeyTitleRequired:     "Title is required",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyBackendURL:        "Backend URL",
		KeyAPIToken:          "API Token",
		KeyRequestTimeout:    "Request Timeout (seconds)",
		KeyMetricsAddr:       "Metrics Address",
		KeyConnectionSection: "Connection",
		KeyInterfaceSection:  "Interface",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRestartRequired:   "Connection changes apply after restart.",
		KeyInvalidURL:        "Invalid backend URL",
	}

	l.texts["es"] = map[string]string{
		KeyAppTitle:          "Lista de Tareas",
		KeyTitle:             "Título",
		KeyTitlePlaceholder:  "¿Qué hay que hacer?",
		KeyDescription:       "Descripción",
		KeyDescPlaceholder:   "Detalles opcionales",
		KeyCreateTask:        "Crear Tarea",
		KeyCompleted:         "Completada",
		KeyPending:           "Pendiente",
		KeyMarkCompleted:     "Marcar como Completada",
		KeyMarkPending:       "Marcar como Pendiente",
		KeyDelete:            "Eliminar",
		KeyNoTasks:           "No hay tareas",
		KeyTitleRequired:     "El título es obligatorio",
		KeySettings:          "Configuración",
		KeyFile:              "Archivo",
		KeyLanguage:          "Idioma",
		KeyBackendURL:        "URL del servidor",
		KeyAPIToken:          "Token de API",
		KeyRequestTimeout:    "Tiempo de espera (segundos)",
		KeyMetricsAddr:       "Dirección de métricas",
		KeyConnectionSection: "Conexión",
		KeyInterfaceSection:  "Interfaz",
		KeySave:              "Guardar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "¡Configuración guardada!",
		KeyRestartRequired:   "Los cambios de conexión se aplican al reiniciar.",
		KeyInvalidURL:        "URL del servidor no válida",
	}
}
