package config

import (
	"fmt"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL       = "server_url"
	KeyCacheTTL        = "image_cache_ttl_minutes"
	KeyLanguage        = "app_language"
	KeyRevealAfterSave = "reveal_after_save"
)

// Default values
const (
	DefaultServerURL       = "http://localhost:3000"
	DefaultCacheTTLMinutes = 15
	DefaultLanguage        = "system"
	DefaultRevealAfterSave = true
)

// Cache TTL bounds in minutes
const (
	MinCacheTTLMinutes = 1
	MaxCacheTTLMinutes = 240
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the gallery server base URL
func (s *Settings) GetServerURL() string {
	raw := s.app.Preferences().String(KeyServerURL)
	if raw == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return raw
}

// SetServerURL stores the gallery server base URL. Invalid values are
// ignored so a typo cannot wedge the app into an unreachable state.
func (s *Settings) SetServerURL(raw string) {
	normalized, err := NormalizeServerURL(raw)
	if err != nil {
		return
	}
	s.app.Preferences().SetString(KeyServerURL, normalized)
}

// NormalizeServerURL trims whitespace and trailing slashes and verifies the
// value parses as an absolute http(s) URL
func NormalizeServerURL(raw string) (string, error) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("server URL must be absolute http(s): %s", raw)
	}
	return raw, nil
}

// GetCacheTTLMinutes returns how long fetched images stay cached, in minutes
func (s *Settings) GetCacheTTLMinutes() int {
	value := s.app.Preferences().Int(KeyCacheTTL)
	if value <= 0 {
		s.SetCacheTTLMinutes(DefaultCacheTTLMinutes)
		return DefaultCacheTTLMinutes
	}
	return value
}

// SetCacheTTLMinutes sets the image cache TTL, clamped to a sane range
func (s *Settings) SetCacheTTLMinutes(minutes int) {
	if minutes < MinCacheTTLMinutes {
		minutes = MinCacheTTLMinutes
	}
	if minutes > MaxCacheTTLMinutes {
		minutes = MaxCacheTTLMinutes
	}
	s.app.Preferences().SetInt(KeyCacheTTL, minutes)
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

// GetRevealAfterSave returns whether saved images are revealed in the file manager
func (s *Settings) GetRevealAfterSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealAfterSave, DefaultRevealAfterSave)
}

// SetRevealAfterSave sets whether saved images are revealed in the file manager
func (s *Settings) SetRevealAfterSave(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealAfterSave, reveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
