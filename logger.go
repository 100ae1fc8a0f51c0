package jsconsole

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger is the leveled contract console traffic can mirror into when a
// bridge is built with WithLogger.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
}

// logByMethod maps a console method name to the logger level it mirrors
// into. Unrecognized names (custom methods bound via WithMethods) log
// at info.
func logByMethod(l Logger, method, line string) {
	switch method {
	case "trace":
		l.Trace(line)
	case "debug":
		l.Debug(line)
	case "warn":
		l.Warn(line)
	case "error", "exception", "assert":
		l.Error(line)
	case "fatal":
		l.Fatal(line)
	default:
		l.Info(line)
	}
}

// StdLoggerOption customises the writer-backed logger.
type StdLoggerOption func(*stdLogger)

// WithStdLoggerTimestampFunc overrides the time source used for log entries.
func WithStdLoggerTimestampFunc(fn func() time.Time) StdLoggerOption {
	return func(l *stdLogger) {
		if fn != nil {
			l.now = fn
		}
	}
}

// NewStdLogger returns a minimal Logger writing one line per entry to
// the supplied writer. It exists so embedders without a logging stack
// can still mirror console traffic; anything richer should adapt its
// own logger via GoLogger.
func NewStdLogger(w io.Writer, name string, opts ...StdLoggerOption) Logger {
	l := &stdLogger{
		writer: w,
		name:   name,
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

type stdLogger struct {
	mu     sync.Mutex
	writer io.Writer
	name   string
	now    func() time.Time
}

func (l *stdLogger) Trace(msg string, args ...any) { l.log("TRACE", msg, args...) }
func (l *stdLogger) Debug(msg string, args ...any) { l.log("DEBUG", msg, args...) }
func (l *stdLogger) Info(msg string, args ...any)  { l.log("INFO", msg, args...) }
func (l *stdLogger) Warn(msg string, args ...any)  { l.log("WARN", msg, args...) }
func (l *stdLogger) Error(msg string, args ...any) { l.log("ERROR", msg, args...) }
func (l *stdLogger) Fatal(msg string, args ...any) { l.log("FATAL", msg, args...) }

func (l *stdLogger) log(level, msg string, args ...any) {
	if l.writer == nil {
		return
	}

	entry := l.now().Format(time.RFC3339Nano) + " " + level
	if l.name != "" {
		entry += " [" + l.name + "]"
	}
	if msg != "" {
		entry += " " + msg
	}
	for i := 0; i+1 < len(args); i += 2 {
		entry += fmt.Sprintf(" %v=%v", args[i], args[i+1])
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.writer, entry)
}
