package jsconsole

import (
	"io"
	"strings"
)

type Option func(*Bridge)

// WithStdout overrides the standard output sink.
func WithStdout(w io.Writer) Option {
	return func(b *Bridge) {
		if w != nil {
			b.stdout = w
		}
	}
}

// WithStderr overrides the standard error sink.
func WithStderr(w io.Writer) Option {
	return func(b *Bridge) {
		if w != nil {
			b.stderr = w
		}
	}
}

// WithMethods replaces the set of console method names bound by Install.
func WithMethods(names ...string) Option {
	return func(b *Bridge) {
		methods := make([]string, 0, len(names))
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name != "" {
				methods = append(methods, name)
			}
		}
		if len(methods) > 0 {
			b.methods = methods
		}
	}
}

// WithCallback registers a host-side hook invoked with the method name
// and formatted line for every console call that produces output.
func WithCallback(fn func(method, line string)) Option {
	return func(b *Bridge) {
		b.callback = fn
	}
}

// WithScriptCallback names a script-global callable invoked as
// name(method, line) after each console call. Lookup and invocation
// failures are swallowed so the hook can never break script execution.
func WithScriptCallback(name string) Option {
	return func(b *Bridge) {
		b.scriptCallback = strings.TrimSpace(name)
	}
}

// WithLogger mirrors console traffic into a leveled logger in addition
// to the configured streams.
func WithLogger(logger Logger) Option {
	return func(b *Bridge) {
		b.logger = logger
	}
}

// WithPanicHandler overrides the recovery hook guarding script-invoked
// dispatch.
func WithPanicHandler(handler func(funcName string, fields ...map[string]any)) Option {
	return func(b *Bridge) {
		if handler != nil {
			b.panicHandler = handler
		}
	}
}
