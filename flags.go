package jsconsole

import (
	"strings"

	"github.com/goliatone/go-errors"
)

// Flags control how the installed console object and the host-side Emit
// behave. Values combine with bitwise OR and are fixed for the lifetime
// of a Bridge once it is constructed.
type Flags uint32

const (
	// FlagProxyWrapper wraps the console object in a proxy so that calls
	// to undefined methods (console.foo()) become silent no-ops instead
	// of raising a "not a function" error.
	FlagProxyWrapper Flags = 1 << iota
	// FlagFlush flushes the output sink after every emitted line.
	FlagFlush
	// FlagToStdout sends output to the standard output sink.
	FlagToStdout
	// FlagToStderr sends output to the standard error sink. Both stream
	// flags may be set to duplicate output.
	FlagToStderr
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagProxyWrapper, "proxy"},
	{FlagFlush, "flush"},
	{FlagToStdout, "stdout"},
	{FlagToStderr, "stderr"},
}

// Has reports whether every bit in flag is set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	parts := make([]string, 0, len(flagNames))
	for _, def := range flagNames {
		if f.Has(def.flag) {
			parts = append(parts, def.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseFlags builds a flag word from a pipe, comma, or space separated
// list of names, e.g. "stdout|flush". Names are matched case
// insensitively; "none" and the empty string yield zero.
func ParseFlags(value string) (Flags, error) {
	var flags Flags

	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == '|' || r == ',' || r == ' '
	})

	for _, field := range fields {
		name := strings.ToLower(strings.TrimSpace(field))
		if name == "" || name == "none" {
			continue
		}

		matched := false
		for _, def := range flagNames {
			if def.name == name {
				flags |= def.flag
				matched = true
				break
			}
		}

		if !matched {
			return 0, errors.New("unknown console flag", errors.CategoryBadInput).
				WithTextCode("CONSOLE_FLAG_UNKNOWN").
				WithMetadata(map[string]any{
					"flag":  field,
					"input": value,
				})
		}
	}

	return flags, nil
}
