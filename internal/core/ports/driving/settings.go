package driving

import "github.com/custodia-labs/pacer/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Set validates and persists a single setting by key.
	// Returns domain.ErrUnknownSetting for unrecognised keys.
	Set(key, value string) error

	// Keys returns the recognised settings keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns where settings are stored.
	Path() string
}
