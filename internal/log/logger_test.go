package log

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(Logger)
		want    string
	}{
		{"Debug", func(l Logger) { l.Debug("skipping data file") }, "skipping data file"},
		{"Info", func(l Logger) { l.Info("loaded confusables") }, "loaded confusables"},
		{"Warn", func(l Logger) { l.Warn("config unreadable") }, "config unreadable"},
		{"Error", func(l Logger) { l.Error("stdin closed") }, "stdin closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			tt.logFunc(logger)

			out := buf.String()
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "level="+strings.ToUpper(tt.name))
		})
	}
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.With("path", "/tmp/confusables.txt").With("entries", 3).Info("loaded confusables")

	out := buf.String()
	assert.Contains(t, out, "path=/tmp/confusables.txt")
	assert.Contains(t, out, "entries=3")
}

func TestNewCLI(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCLI(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("shown", "host", "example.com")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "host=example.com")
	assert.NotContains(t, out, "time=")
}

func TestNoop(t *testing.T) {
	logger := NewNoop()
	logger.Debug("debug")
	logger.Error("error")

	_, ok := logger.With("key", "value").(noopLogger)
	assert.True(t, ok, "With on a noop logger should stay noop")
}

func TestDefaultLogger(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewCLI(&buf, slog.LevelDebug))
	Default().Warn("custom logger message")

	require.Contains(t, buf.String(), "custom logger message")
}

func TestDefaultLoggerConcurrency(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				Default().Info("concurrent read")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				SetDefault(NewNoop())
			}
		}()
	}
	wg.Wait()
}
