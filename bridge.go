package jsconsole

import (
	"io"
	"os"

	"github.com/goliatone/go-command"
)

// DefaultMethods is the console method set bound by Install when no
// override is configured. It mirrors the common runtime console surface:
// assert prints only on a falsy first argument, trace and dir behave as
// log, the rest differ only in the level used by an attached logger.
var DefaultMethods = []string{
	"log",
	"debug",
	"info",
	"warn",
	"error",
	"trace",
	"fatal",
	"assert",
	"exception",
	"dir",
}

// Bridge connects script-invoked console calls and host-side Emit calls
// to one or both of the process output streams. One bridge binds to one
// goja runtime at Install time and lives for that runtime's lifetime;
// the flag word is fixed at construction and never mutated afterwards.
type Bridge struct {
	flags          Flags
	stdout         io.Writer
	stderr         io.Writer
	methods        []string
	callback       func(method, line string)
	scriptCallback string
	logger         Logger
	panicHandler   func(funcName string, fields ...map[string]any)
}

// New creates a bridge with the given flag word. Output goes to
// os.Stdout/os.Stderr unless overridden through options.
func New(flags Flags, opts ...Option) *Bridge {
	b := &Bridge{
		flags:   flags,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		methods: DefaultMethods,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	if b.panicHandler == nil {
		b.panicHandler = command.MakePanicHandler(command.DefaultPanicLogger)
	}

	return b
}

// Flags returns the flag word the bridge was constructed with.
func (b *Bridge) Flags() Flags {
	return b.flags
}
