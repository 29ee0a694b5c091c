package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyServerEndpoint = "server_endpoint"
	KeyRequestTimeout = "request_timeout_seconds"
	KeyAutoOpenStream = "auto_open_stream"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultServerEndpoint = "http://localhost:8080"
	DefaultRequestTimeout = 30
	DefaultAutoOpenStream = false
	DefaultLanguage       = "system"
)

// Timeout bounds in seconds
const (
	MinRequestTimeout = 5
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

// GetServerEndpoint returns the recognition server base URL
func (s *Settings) GetServerEndpoint() string {
	endpoint := s.app.Preferences().String(KeyServerEndpoint)
	if endpoint == "" {
		s.SetServerEndpoint(DefaultServerEndpoint)
		return DefaultServerEndpoint
	}
	return endpoint
}

// SetServerEndpoint sets the recognition server base URL
func (s *Settings) SetServerEndpoint(endpoint string) {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		endpoint = DefaultServerEndpoint
	}
	s.app.Preferences().SetString(KeyServerEndpoint, endpoint)
}

// GetRequestTimeout returns the upload request timeout in seconds
func (s *Settings) GetRequestTimeout() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		s.SetRequestTimeout(DefaultRequestTimeout)
		return DefaultRequestTimeout
	}
	return value
}

// SetRequestTimeout sets the upload request timeout in seconds
func (s *Settings) SetRequestTimeout(seconds int) {
	if seconds < MinRequestTimeout {
		seconds = MinRequestTimeout
	}
	if seconds > MaxRequestTimeout {
		seconds = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetAutoOpenStream returns whether to open the stream URL after recognition
func (s *Settings) GetAutoOpenStream() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoOpenStream, DefaultAutoOpenStream)
}

// SetAutoOpenStream sets whether to open the stream URL after recognition
func (s *Settings) SetAutoOpenStream(autoOpen bool) {
	s.app.Preferences().SetBool(KeyAutoOpenStream, autoOpen)
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

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
