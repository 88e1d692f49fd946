// Package logger provides verbose logging for the lawdata CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users follow requests and the content
// resolution chain. Errors are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu        sync.RWMutex
	verbose   bool
	requestID string
	output    io.Writer = os.Stderr
	level               = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	log                 = newLogger(os.Stderr, "")
)

// newLogger writes "[LEVEL] message" lines to w. A non-empty id is
// appended to every line as the request field.
func newLogger(w io.Writer, id string) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      bracketLevel,
		ConsoleSeparator: " ",
	})
	l := zap.New(zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), level))
	if id != "" {
		l = l.With(zap.String("request", id))
	}
	return l
}

func bracketLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.ErrorLevel)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = newLogger(w, requestID)
}

// SetRequestID tags every following line with id. "" removes the tag.
func SetRequestID(id string) {
	mu.Lock()
	defer mu.Unlock()
	requestID = id
	log = newLogger(output, id)
}

// RequestID returns the current request tag.
func RequestID() string {
	mu.RLock()
	defer mu.RUnlock()
	return requestID
}

// Logger returns the underlying zap logger for structured call sites.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	Logger().Debug(fmt.Sprintf(format, args...))
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	Logger().Info(fmt.Sprintf(format, args...))
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	Logger().Warn(fmt.Sprintf(format, args...))
}

// Error prints an error message regardless of verbose mode.
func Error(format string, args ...any) {
	Logger().Error(fmt.Sprintf(format, args...))
}
