package jsconsole

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-errors"
)

// Emit formats a line printf-style and writes it through the stream
// policy the per-call flags select, independent of any installed
// console object. It is the host-side twin of the script-invoked path:
// native code logs with the same framing and destinations without going
// through the runtime. Returns the total bytes written.
//
// Unlike C-style variadic logging, a verb/argument mismatch is detected
// and reported instead of producing mangled output.
func (b *Bridge) Emit(flags Flags, format string, args ...any) (int, error) {
	if err := validateFormat(format, args); err != nil {
		return 0, err
	}

	line := fmt.Sprintf(format, args...)

	n, err := b.writeLine(flags, line)
	if err != nil {
		return n, errors.Wrap(err, errors.CategoryExternal, "console write failed").
			WithTextCode("CONSOLE_WRITE_ERROR").
			WithMetadata(map[string]any{
				"operation": "emit",
				"flags":     flags.String(),
			})
	}

	if b.callback != nil {
		b.callback("emit", line)
	}
	if b.logger != nil {
		b.logger.Info(line)
	}

	return n, nil
}

// validateFormat walks the format string's verbs and checks them
// against the supplied operands before anything is rendered, so a
// mismatch is reported up front and an argument that happens to contain
// formatting-like text is never misread.
func validateFormat(format string, args []any) error {
	mismatch := func(reason string) error {
		return errors.New("format string does not match arguments", errors.CategoryBadInput).
			WithTextCode("CONSOLE_FORMAT_MISMATCH").
			WithMetadata(map[string]any{
				"operation":      "emit",
				"format":         format,
				"argument_count": len(args),
				"reason":         reason,
			})
	}

	used := 0
	take := func() (any, bool) {
		if used < len(args) {
			arg := args[used]
			used++
			return arg, true
		}
		used++
		return nil, false
	}

	for i := 0; i < len(format); {
		if format[i] != '%' {
			i++
			continue
		}
		i++

		if i < len(format) && format[i] == '%' {
			i++
			continue
		}

		for i < len(format) && strings.ContainsRune("+-# 0", rune(format[i])) {
			i++
		}
		if i < len(format) && format[i] == '*' {
			if arg, ok := take(); ok && !isInteger(arg) {
				return mismatch("width operand is not an integer")
			}
			i++
		}
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			i++
		}
		if i < len(format) && format[i] == '.' {
			i++
			if i < len(format) && format[i] == '*' {
				if arg, ok := take(); ok && !isInteger(arg) {
					return mismatch("precision operand is not an integer")
				}
				i++
			}
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
		}

		if i >= len(format) {
			return mismatch("format ends mid-verb")
		}

		verb := rune(format[i])
		i++

		arg, ok := take()
		if !ok {
			continue
		}
		if !operandMatches(verb, arg) {
			return mismatch(fmt.Sprintf("verb %%%c does not accept %T", verb, arg))
		}
	}

	if used != len(args) {
		return mismatch(fmt.Sprintf("format consumes %d operands, call has %d", used, len(args)))
	}
	return nil
}

func operandMatches(verb rune, arg any) bool {
	// Custom formatters decide for themselves, whatever the verb.
	if _, ok := arg.(fmt.Formatter); ok {
		return true
	}

	switch verb {
	case 'v', 'T':
		return true
	case 't':
		_, ok := arg.(bool)
		return ok
	case 'b', 'c', 'd', 'o', 'O', 'U':
		return isInteger(arg)
	case 'e', 'E', 'f', 'F', 'g', 'G':
		return isFloat(arg)
	case 's', 'q', 'x', 'X', 'p':
		// Strings, byte slices, stringers, pointers; %q and %x also
		// accept integers. Left permissive rather than re-deriving
		// fmt's full operand rules.
		return true
	default:
		return false
	}
}

func isInteger(arg any) bool {
	switch reflect.ValueOf(arg).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(arg any) bool {
	switch reflect.ValueOf(arg).Kind() {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}
