package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verbose)
	t.Cleanup(func() {
		SetVerbose(false)
		SetRequestID("")
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name string
		log  func(string, ...any)
		want string
	}{
		{"debug", Debug, "[DEBUG] message arg\n"},
		{"info", Info, "[INFO] message arg\n"},
		{"warn", Warn, "[WARN] message arg\n"},
		{"error", Error, "[ERROR] message arg\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log("message %s", "arg")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("debug")
	Info("info")
	Warn("warn")
	Section("section")
	assert.Empty(t, buf.String())

	Error("failed %d", 1)
	assert.Equal(t, "[ERROR] failed 1\n", buf.String())
}

func TestSetRequestID(t *testing.T) {
	buf := capture(t, true)

	SetRequestID("3f2a")
	assert.Equal(t, "3f2a", RequestID())
	Info("resolved")
	assert.Equal(t, "[INFO] resolved {\"request\": \"3f2a\"}\n", buf.String())

	buf.Reset()
	SetRequestID("")
	Info("plain")
	assert.Equal(t, "[INFO] plain\n", buf.String())
}

func TestSetRequestID_SurvivesSetOutput(t *testing.T) {
	capture(t, true)
	SetRequestID("abc")

	var buf bytes.Buffer
	SetOutput(&buf)
	Warn("slow")

	assert.Contains(t, buf.String(), `"request": "abc"`)
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Test Section")

	assert.Equal(t, "\n=== Test Section ===\n", buf.String())
}

func TestConcurrentAccess(t *testing.T) {
	capture(t, false)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
		}()
	}
	wg.Wait()
}
