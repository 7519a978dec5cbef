package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL     = "api_base_url"
	KeyAPIToken       = "api_token"
	KeyRequestTimeout = "request_timeout_seconds"
	KeyLanguage       = "app_language"
	KeyMetricsAddr    = "metrics_addr"
)

// Environment variables that override preferences
const (
	EnvAPIBaseURL  = "TASKLIST_API_URL"
	EnvAPIToken    = "TASKLIST_API_TOKEN"
	EnvMetricsAddr = "TASKLIST_METRICS_ADDR"
)

// Default values
const (
	DefaultAPIBaseURL     = "http://localhost:8000"
	DefaultRequestTimeout = 10
	DefaultLanguage       = "system"

	MinRequestTimeout = 1
	MaxRequestTimeout = 120
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the backend root URL
func (s *Settings) GetAPIBaseURL() string {
	if v := envValue(EnvAPIBaseURL); v != "" {
		return v
	}
	return s.StoredAPIBaseURL()
}

// StoredAPIBaseURL returns the backend root URL from preferences, ignoring the environment
func (s *Settings) StoredAPIBaseURL() string {
	u := s.app.Preferences().String(KeyAPIBaseURL)
	if u == "" {
		return DefaultAPIBaseURL
	}
	return u
}

// SetAPIBaseURL stores the backend root URL. An empty value restores the default.
func (s *Settings) SetAPIBaseURL(u string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, strings.TrimSpace(u))
}

// GetAPIToken returns the bearer token, or "" when requests are anonymous
func (s *Settings) GetAPIToken() string {
	if v := envValue(EnvAPIToken); v != "" {
		return v
	}
	return s.StoredAPIToken()
}

// StoredAPIToken returns the bearer token from preferences, ignoring the environment
func (s *Settings) StoredAPIToken() string {
	return s.app.Preferences().String(KeyAPIToken)
}

// SetAPIToken stores the bearer token
func (s *Settings) SetAPIToken(token string) {
	s.app.Preferences().SetString(KeyAPIToken, strings.TrimSpace(token))
}

// GetRequestTimeoutSeconds returns the per-request timeout in seconds
func (s *Settings) GetRequestTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		return DefaultRequestTimeout
	}
	return value
}

// SetRequestTimeoutSeconds sets the per-request timeout in seconds
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds < MinRequestTimeout {
		seconds = MinRequestTimeout
	}
	if seconds > MaxRequestTimeout {
		seconds = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetRequestTimeout returns the per-request timeout as a duration
func (s *Settings) GetRequestTimeout() time.Duration {
	return time.Duration(s.GetRequestTimeoutSeconds()) * time.Second
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetMetricsAddr returns the diagnostics listen address. Empty disables the listener.
func (s *Settings) GetMetricsAddr() string {
	if v := envValue(EnvMetricsAddr); v != "" {
		return v
	}
	return s.StoredMetricsAddr()
}

// StoredMetricsAddr returns the diagnostics listen address from preferences, ignoring the environment
func (s *Settings) StoredMetricsAddr() string {
	return s.app.Preferences().String(KeyMetricsAddr)
}

// SetMetricsAddr sets the diagnostics listen address
func (s *Settings) SetMetricsAddr(addr string) {
	s.app.Preferences().SetString(KeyMetricsAddr, strings.TrimSpace(addr))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"es":     "Español",
	}
}

// ValidateAPIBaseURL checks that u is an absolute http(s) URL with a host
func ValidateAPIBaseURL(u string) error {
	parsed, err := url.Parse(strings.TrimSpace(u))
	if err != nil {
		return fmt.Errorf("invalid backend URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid backend URL %q: scheme must be http or https", u)
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid backend URL %q: missing host", u)
	}
	return nil
}

// OverriddenByEnv reports whether the environment currently overrides the
// preference stored under key. Overridden values must not be written back.
func OverriddenByEnv(key string) bool {
	switch key {
	case KeyAPIBaseURL:
		return envValue(EnvAPIBaseURL) != ""
	case KeyAPIToken:
		return envValue(EnvAPIToken) != ""
	case KeyMetricsAddr:
		return envValue(EnvMetricsAddr) != ""
	}
	return false
}

func envValue(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
