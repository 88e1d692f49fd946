package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lawdata/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/lawdata/internal/core/domain"
)

func newTestSettings(env map[string]string) (*SettingsService, *memory.ConfigStore) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	service.getenv = func(key string) string { return env[key] }
	return service, store
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service, _ := newTestSettings(nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	service, store := newTestSettings(nil)
	_ = store.Set("api.oc", "stored")
	_ = store.Set("api.language", "ori")
	_ = store.Set("http.max_retries", 0)
	_ = store.Set("http.retry_delay", "250ms")
	_ = store.Set("http.rate_limit", 2.5)
	_ = store.Set("output.format", "yaml")

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "stored", settings.API.OC)
	assert.Equal(t, domain.LanguageOriginal, settings.API.Language)
	assert.Equal(t, 0, settings.HTTP.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, settings.HTTP.RetryDelay)
	assert.InDelta(t, 2.5, settings.HTTP.RateLimit, 0.001)
	assert.Equal(t, domain.OutputYAML, settings.Output.Format)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	service, store := newTestSettings(nil)
	_ = store.Set("api.language", "EN")
	_ = store.Set("output.format", "xml")
	_ = store.Set("http.read_timeout", "soon")

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.API.Language, settings.API.Language)
	assert.Equal(t, defaults.Output.Format, settings.Output.Format)
	assert.Equal(t, defaults.HTTP.ReadTimeout, settings.HTTP.ReadTimeout)
}

func TestSettingsService_Get_EnvironmentOverridesKey(t *testing.T) {
	service, store := newTestSettings(map[string]string{EnvOC: " fromenv "})
	_ = store.Set("api.oc", "stored")

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "fromenv", settings.API.OC)
}

func TestSettingsService_Save(t *testing.T) {
	service, store := newTestSettings(nil)
	settings := domain.DefaultAppSettings()
	settings.API.OC = "tester"
	settings.HTTP.RetryDelay = 2 * time.Second

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, "tester", store.GetString("api.oc"))
	assert.Equal(t, "2s", store.GetString("http.retry_delay"))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *got)
}

func TestSettingsService_Save_SkipsEmptyKey(t *testing.T) {
	service, store := newTestSettings(nil)
	settings := domain.DefaultAppSettings()

	require.NoError(t, service.Save(&settings))

	_, ok := store.Get("api.oc")
	assert.False(t, ok)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  any
	}{
		{"string", "api.oc", "tester", "tester"},
		{"language upper-cased", "api.language", "ori", "ORI"},
		{"integer", "http.max_retries", "5", 5},
		{"float", "http.rate_limit", "1.5", 1.5},
		{"duration normalised", "http.read_timeout", "90s", "1m30s"},
		{"format lower-cased", "output.format", "YAML", "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newTestSettings(nil)

			require.NoError(t, service.Set(tt.key, tt.value))

			got, ok := store.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsService_Set_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "search.mode", "hybrid"},
		{"negative integer", "http.max_retries", "-1"},
		{"not a number", "http.rate_limit", "fast"},
		{"bad duration", "http.retry_delay", "1 second"},
		{"bad language", "api.language", "EN"},
		{"bad format", "output.format", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newTestSettings(nil)

			err := service.Set(tt.key, tt.value)

			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, store.Keys())
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service, _ := newTestSettings(nil)

	keys := service.Keys()

	assert.Len(t, keys, 13)
	assert.Equal(t, "api.oc", keys[0])
	assert.Equal(t, "output.format", keys[len(keys)-1])
}

func TestSettingsService_Validate(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		service, _ := newTestSettings(nil)
		assert.ErrorIs(t, service.Validate(), domain.ErrMissingAPIKey)
	})

	t.Run("stored key", func(t *testing.T) {
		service, store := newTestSettings(nil)
		_ = store.Set("api.oc", "tester")
		assert.NoError(t, service.Validate())
	})

	t.Run("environment key", func(t *testing.T) {
		service, _ := newTestSettings(map[string]string{EnvOC: "tester"})
		assert.NoError(t, service.Validate())
	})
}
