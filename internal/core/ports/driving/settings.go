package driving

import "github.com/custodia-labs/lawdata/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	// The LAWDATA_OC environment variable overrides the stored API key.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates one setting by its dotted key and persists it.
	Set(key, value string) error

	// Keys lists the settable keys in display order.
	Keys() []string

	// Validate checks if current settings are usable for API calls.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
