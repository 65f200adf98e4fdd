package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/renderkit/core/logger"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Debug("hidden")
	log.Info("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "level=INFO")
}

func TestNewJSONFormatter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithJSONFormatter())

	log.Info("hello", slog.String("key", "value"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "value", record["key"])
}

func TestNewWithAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "renderkit")),
	)

	log.Info("msg")
	assert.Contains(t, buf.String(), "service=renderkit")
}

func TestWithDevelopment(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithDevelopment("demo"), logger.WithOutput(&buf))

	log.Debug("verbose")
	out := buf.String()
	assert.Contains(t, out, "verbose")
	assert.Contains(t, out, "app=demo")
}

func TestWithProduction(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithProduction("demo"), logger.WithOutput(&buf))

	log.Debug("hidden")
	log.Info("shown")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "shown", record["msg"])
	assert.Equal(t, "demo", record["app"])
}

func TestErrorAttr(t *testing.T) {
	t.Parallel()

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)

	// Nil errors produce an empty attribute that slog drops.
	assert.Equal(t, slog.Attr{}, logger.Error(nil))
}

func TestEmptyAttrsAreDropped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Info("msg",
		logger.RequestID(""),
		logger.Component(""),
		logger.Query(""),
		logger.RemoteAddr(""),
		logger.Template(""),
	)

	out := buf.String()
	assert.NotContains(t, out, "request_id")
	assert.NotContains(t, out, "component")
	assert.NotContains(t, out, "template")
}

func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.String("request_id", "abc"), logger.RequestID("abc"))
	assert.Equal(t, slog.String("method", "GET"), logger.Method("GET"))
	assert.Equal(t, slog.String("path", "/x"), logger.Path("/x"))
	assert.Equal(t, slog.Int("status_code", 200), logger.StatusCode(200))
	assert.Equal(t, slog.Int64("bytes_out", 12), logger.BytesOut(12))
	assert.Equal(t, slog.Duration("duration", time.Second), logger.Duration(time.Second))
	assert.Equal(t, slog.String("template", "hello.html"), logger.Template("hello.html"))
}
