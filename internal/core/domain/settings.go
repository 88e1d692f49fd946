package domain

import "time"

const unknownDescription = "Unknown"

// Language selects the statute text variant (LANG / chrClsCd).
type Language string

// Available statute languages.
const (
	// LanguageKorean is the Hangul text.
	LanguageKorean Language = "KO"

	// LanguageOriginal is the original text, which may contain Hanja.
	LanguageOriginal Language = "ORI"
)

// IsValid returns true if the language is recognised.
func (l Language) IsValid() bool {
	switch l {
	case LanguageKorean, LanguageOriginal:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l Language) String() string {
	return string(l)
}

// CharClassCode returns the chrClsCd used by effective-date content queries.
func (l Language) CharClassCode() string {
	if l == LanguageOriginal {
		return "010201"
	}
	return "010202"
}

// Description returns a human-readable description of the language.
func (l Language) Description() string {
	switch l {
	case LanguageKorean:
		return "Korean (Hangul)"
	case LanguageOriginal:
		return "Original text"
	default:
		return unknownDescription
	}
}

// OutputFormat defines how the CLI renders records.
type OutputFormat string

// Available output formats.
const (
	// OutputJSON renders JSON, indented on a terminal.
	OutputJSON OutputFormat = "json"

	// OutputYAML renders YAML.
	OutputYAML OutputFormat = "yaml"
)

// IsValid returns true if the format is recognised.
func (f OutputFormat) IsValid() bool {
	return f == OutputJSON || f == OutputYAML
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// APISettings holds open API access configuration.
type APISettings struct {
	// OC is the user key issued by the open API (usually the e-mail local part).
	OC string

	// BaseURL is the DRF endpoint root.
	BaseURL string

	// Language is the default statute text variant.
	Language Language
}

// IsConfigured returns true if the API key is set.
func (a APISettings) IsConfigured() bool {
	return a.OC != ""
}

// HTTPSettings holds outbound transport configuration.
type HTTPSettings struct {
	// ConnectTimeout bounds dialing a connection.
	ConnectTimeout time.Duration

	// ReadTimeout bounds each read: waiting for the headers and every body read.
	ReadTimeout time.Duration

	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int

	// RetryDelay is the base delay; attempt n waits RetryDelay×n.
	RetryDelay time.Duration

	// MaxConnections bounds idle connections per host.
	MaxConnections int

	// KeepAlive is how long idle connections are kept.
	KeepAlive time.Duration

	// UserAgent is sent on scraping requests.
	UserAgent string

	// RateLimit is the client-side request rate per second. 0 disables it.
	RateLimit float64

	// RateBurst is the limiter burst size.
	RateBurst int
}

// OutputSettings holds CLI rendering configuration.
type OutputSettings struct {
	// Format is the default output format.
	Format OutputFormat
}

// AppSettings holds all application settings.
type AppSettings struct {
	// API holds open API access settings.
	API APISettings

	// HTTP holds transport settings.
	HTTP HTTPSettings

	// Output holds CLI rendering settings.
	Output OutputSettings
}

// DefaultBaseURL is the open API endpoint root.
const DefaultBaseURL = "http://www.law.go.kr/DRF"

// DefaultAppSettings returns settings with sensible defaults.
// The API key is left empty; users must set it via config or LAWDATA_OC.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL:  DefaultBaseURL,
			Language: LanguageKorean,
		},
		HTTP: HTTPSettings{
			ConnectTimeout: 10 * time.Second,
			ReadTimeout:    30 * time.Second,
			MaxRetries:     3,
			RetryDelay:     time.Second,
			MaxConnections: 5,
			KeepAlive:      5 * time.Minute,
			UserAgent:      "Mozilla/5.0",
			RateLimit:      0, // Disabled; retries handle throttling
			RateBurst:      1,
		},
		Output: OutputSettings{
			Format: OutputJSON,
		},
	}
}

// AllLanguages returns all statute languages.
func AllLanguages() []Language {
	return []Language{LanguageKorean, LanguageOriginal}
}

// AllOutputFormats returns all output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{OutputJSON, OutputYAML}
}
