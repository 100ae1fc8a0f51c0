package jsconsole

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-logger/glog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdLoggerOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	stamp := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	logger := NewStdLogger(buf, "console", WithStdLoggerTimestampFunc(func() time.Time {
		return stamp
	}))

	logger.Warn("something odd", "count", 3)

	out := buf.String()
	assert.Contains(t, out, stamp.Format(time.RFC3339Nano))
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "[console]")
	assert.Contains(t, out, "something odd")
	assert.Contains(t, out, "count=3")
}

func TestStdLoggerNilWriterIsSilent(t *testing.T) {
	logger := NewStdLogger(nil, "quiet")
	logger.Info("dropped")
}

func TestLogByMethodLevels(t *testing.T) {
	rec := &recordingLogger{}

	methods := map[string]string{
		"trace":     "trace",
		"debug":     "debug",
		"log":       "info",
		"info":      "info",
		"dir":       "info",
		"warn":      "warn",
		"error":     "error",
		"exception": "error",
		"assert":    "error",
		"fatal":     "fatal",
		"custom":    "info",
	}

	for method, level := range methods {
		rec.level = ""
		logByMethod(rec, method, "line")
		assert.Equal(t, level, rec.level, "method %q", method)
	}
}

func TestGoLoggerAdapter(t *testing.T) {
	stub := &stubGlogLogger{}
	logger := GoLogger(stub)
	require.NotNil(t, logger)

	logger.Error("broken", "code", 500)
	assert.Equal(t, "broken", stub.lastMsg)
	assert.Equal(t, []any{"code", 500}, stub.lastArgs)

	assert.Nil(t, GoLogger(nil))
}

type recordingLogger struct {
	level string
	line  string
}

func (r *recordingLogger) Trace(msg string, args ...any) { r.level, r.line = "trace", msg }
func (r *recordingLogger) Debug(msg string, args ...any) { r.level, r.line = "debug", msg }
func (r *recordingLogger) Info(msg string, args ...any)  { r.level, r.line = "info", msg }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.level, r.line = "warn", msg }
func (r *recordingLogger) Error(msg string, args ...any) { r.level, r.line = "error", msg }
func (r *recordingLogger) Fatal(msg string, args ...any) { r.level, r.line = "fatal", msg }

type stubGlogLogger struct {
	lastMsg  string
	lastArgs []any
}

func (s *stubGlogLogger) Trace(msg string, args ...any) { s.record(msg, args...) }
func (s *stubGlogLogger) Debug(msg string, args ...any) { s.record(msg, args...) }
func (s *stubGlogLogger) Info(msg string, args ...any)  { s.record(msg, args...) }
func (s *stubGlogLogger) Warn(msg string, args ...any)  { s.record(msg, args...) }
func (s *stubGlogLogger) Error(msg string, args ...any) { s.record(msg, args...) }
func (s *stubGlogLogger) Fatal(msg string, args ...any) { s.record(msg, args...) }

func (s *stubGlogLogger) record(msg string, args ...any) {
	s.lastMsg = msg
	s.lastArgs = append([]any{}, args...)
}

func (s *stubGlogLogger) WithContext(ctx context.Context) glog.Logger {
	return s
}

func (s *stubGlogLogger) With(args ...any) glog.Logger {
	return s
}
