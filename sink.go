package jsconsole

import "io"

type flusher interface {
	Flush() error
}

type syncer interface {
	Sync() error
}

// targets resolves the sinks a flag word selects. Neither stream bit
// set falls back to stdout.
func (b *Bridge) targets(flags Flags) []io.Writer {
	sinks := make([]io.Writer, 0, 2)
	if flags.Has(FlagToStdout) {
		sinks = append(sinks, b.stdout)
	}
	if flags.Has(FlagToStderr) {
		sinks = append(sinks, b.stderr)
	}
	if len(sinks) == 0 {
		sinks = append(sinks, b.stdout)
	}
	return sinks
}

// writeLine frames line with a trailing newline and writes it to every
// selected sink, flushing each one when FlagFlush is set. It returns
// the total bytes written and the first write error encountered; flush
// errors are ignored, matching stream semantics where a failed flush on
// a terminal is not a logging failure.
func (b *Bridge) writeLine(flags Flags, line string) (int, error) {
	payload := []byte(line + "\n")

	total := 0
	var firstErr error
	for _, sink := range b.targets(flags) {
		if sink == nil {
			continue
		}

		n, err := sink.Write(payload)
		total += n
		if err != nil && firstErr == nil {
			firstErr = err
		}

		if flags.Has(FlagFlush) {
			flushSink(sink)
		}
	}

	return total, firstErr
}

func flushSink(w io.Writer) {
	switch s := w.(type) {
	case flusher:
		s.Flush()
	case syncer:
		s.Sync()
	}
}
