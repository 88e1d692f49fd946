package lawgo

import (
	"strings"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

// Config holds the connection settings for the open API.
type Config struct {
	// BaseURL is the DRF root, without a trailing slash.
	BaseURL string

	// OC is the user key.
	OC string

	// Language is the default statute text variant.
	Language domain.Language

	// RateLimit is requests per second; 0 disables throttling.
	RateLimit float64
	RateBurst int
}

// DefaultConfig returns the public endpoint with no key.
func DefaultConfig() Config {
	return Config{
		BaseURL:   domain.DefaultBaseURL,
		Language:  domain.LanguageKorean,
		RateBurst: 1,
	}
}

// ConfigFromSettings maps application settings onto a Config.
func ConfigFromSettings(s domain.AppSettings) Config {
	cfg := DefaultConfig()
	if s.API.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(s.API.BaseURL, "/")
	}
	if s.API.Language.IsValid() {
		cfg.Language = s.API.Language
	}
	cfg.OC = s.API.OC
	cfg.RateLimit = s.HTTP.RateLimit
	cfg.RateBurst = s.HTTP.RateBurst
	return cfg
}

// Validate checks the config can be used for API calls.
func (c Config) Validate() error {
	if c.OC == "" {
		return domain.ErrMissingAPIKey
	}
	return nil
}
