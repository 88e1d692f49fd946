package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/core/ports/driven"
	"github.com/custodia-labs/lawdata/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// EnvOC overrides the stored open API key.
const EnvOC = "LAWDATA_OC"

// Config keys for settings storage.
const (
	keyOC             = "api.oc"
	keyBaseURL        = "api.base_url"
	keyLanguage       = "api.language"
	keyConnectTimeout = "http.connect_timeout"
	keyReadTimeout    = "http.read_timeout"
	keyMaxRetries     = "http.max_retries"
	keyRetryDelay     = "http.retry_delay"
	keyMaxConnections = "http.max_connections"
	keyKeepAlive      = "http.keep_alive"
	keyUserAgent      = "http.user_agent"
	keyRateLimit      = "http.rate_limit"
	keyRateBurst      = "http.rate_burst"
	keyOutputFormat   = "output.format"
)

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindFloat
	kindDuration
	kindLanguage
	kindFormat
)

// settingKeys lists settable keys in display order.
var settingKeys = []struct {
	key  string
	kind valueKind
}{
	{keyOC, kindString},
	{keyBaseURL, kindString},
	{keyLanguage, kindLanguage},
	{keyConnectTimeout, kindDuration},
	{keyReadTimeout, kindDuration},
	{keyMaxRetries, kindInt},
	{keyRetryDelay, kindDuration},
	{keyMaxConnections, kindInt},
	{keyKeepAlive, kindDuration},
	{keyUserAgent, kindString},
	{keyRateLimit, kindFloat},
	{keyRateBurst, kindInt},
	{keyOutputFormat, kindFormat},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		getenv:      os.Getenv,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		API: domain.APISettings{
			OC:       s.getString(keyOC, ""),
			BaseURL:  s.getString(keyBaseURL, defaults.API.BaseURL),
			Language: s.getLanguage(defaults.API.Language),
		},
		HTTP: domain.HTTPSettings{
			ConnectTimeout: s.getDuration(keyConnectTimeout, defaults.HTTP.ConnectTimeout),
			ReadTimeout:    s.getDuration(keyReadTimeout, defaults.HTTP.ReadTimeout),
			MaxRetries:     s.getCount(keyMaxRetries, defaults.HTTP.MaxRetries),
			RetryDelay:     s.getDuration(keyRetryDelay, defaults.HTTP.RetryDelay),
			MaxConnections: s.getInt(keyMaxConnections, defaults.HTTP.MaxConnections),
			KeepAlive:      s.getDuration(keyKeepAlive, defaults.HTTP.KeepAlive),
			UserAgent:      s.getString(keyUserAgent, defaults.HTTP.UserAgent),
			RateLimit:      s.getFloat(keyRateLimit, defaults.HTTP.RateLimit),
			RateBurst:      s.getInt(keyRateBurst, defaults.HTTP.RateBurst),
		},
		Output: domain.OutputSettings{
			Format: s.getFormat(defaults.Output.Format),
		},
	}

	if oc := strings.TrimSpace(s.getenv(EnvOC)); oc != "" {
		settings.API.OC = oc
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyBaseURL, settings.API.BaseURL},
		{keyLanguage, settings.API.Language.String()},
		{keyConnectTimeout, settings.HTTP.ConnectTimeout.String()},
		{keyReadTimeout, settings.HTTP.ReadTimeout.String()},
		{keyMaxRetries, settings.HTTP.MaxRetries},
		{keyRetryDelay, settings.HTTP.RetryDelay.String()},
		{keyMaxConnections, settings.HTTP.MaxConnections},
		{keyKeepAlive, settings.HTTP.KeepAlive.String()},
		{keyUserAgent, settings.HTTP.UserAgent},
		{keyRateLimit, settings.HTTP.RateLimit},
		{keyRateBurst, settings.HTTP.RateBurst},
		{keyOutputFormat, settings.Output.Format.String()},
	}
	// The key may come from the environment; only persist one that was set.
	if settings.API.OC != "" {
		values = append(values, struct {
			key   string
			value any
		}{keyOC, settings.API.OC})
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return s.configStore.Save()
}

// Set updates one setting by its dotted key and persists it.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)
	for _, k := range settingKeys {
		if k.key != key {
			continue
		}
		parsed, err := parseSetting(k.kind, value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
		}
		if err := s.configStore.Set(key, parsed); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
		return s.configStore.Save()
	}
	return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
}

func parseSetting(kind valueKind, value string) (any, error) {
	switch kind {
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("want a non-negative integer, got %q", value)
		}
		return n, nil
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return nil, fmt.Errorf("want a non-negative number, got %q", value)
		}
		return f, nil
	case kindDuration:
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("want a duration such as 30s, got %q", value)
		}
		return d.String(), nil
	case kindLanguage:
		lang := domain.Language(strings.ToUpper(value))
		if !lang.IsValid() {
			return nil, fmt.Errorf("want one of %v, got %q", domain.AllLanguages(), value)
		}
		return lang.String(), nil
	case kindFormat:
		format := domain.OutputFormat(strings.ToLower(value))
		if !format.IsValid() {
			return nil, fmt.Errorf("want one of %v, got %q", domain.AllOutputFormats(), value)
		}
		return format.String(), nil
	default:
		return value, nil
	}
}

// Keys lists the settable keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	for i, k := range settingKeys {
		keys[i] = k.key
	}
	return keys
}

// Validate checks if current settings are usable for API calls.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	if !settings.API.IsConfigured() {
		return fmt.Errorf("%w: set %s or run 'lawdata config set %s <key>'", domain.ErrMissingAPIKey, EnvOC, keyOC)
	}
	if !settings.API.Language.IsValid() {
		return fmt.Errorf("%w: language %q", domain.ErrInvalidInput, settings.API.Language)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

// getCount is getInt for keys where zero is a meaningful value.
func (s *SettingsService) getCount(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetDuration(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getLanguage(defaultVal domain.Language) domain.Language {
	lang := domain.Language(strings.ToUpper(s.configStore.GetString(keyLanguage)))
	if !lang.IsValid() {
		return defaultVal
	}
	return lang
}

func (s *SettingsService) getFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	format := domain.OutputFormat(strings.ToLower(s.configStore.GetString(keyOutputFormat)))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}
