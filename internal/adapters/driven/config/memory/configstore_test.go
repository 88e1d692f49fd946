package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("api.oc", "tester"))
	require.NoError(t, store.Set("http.max_retries", 4))
	require.NoError(t, store.Set("http.retry_delay", "250ms"))

	assert.Equal(t, "tester", store.GetString("api.oc"))
	assert.Equal(t, 4, store.GetInt("http.max_retries"))
	assert.Equal(t, 250*time.Millisecond, store.GetDuration("http.retry_delay"))
	assert.Equal(t, []string{"api.oc", "http.max_retries", "http.retry_delay"}, store.Keys())
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set("http.max_retries", i)
			_ = store.GetInt("http.max_retries")
		}()
	}
	wg.Wait()

	_, ok := store.Get("http.max_retries")
	assert.True(t, ok)
}
