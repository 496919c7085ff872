package perf

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Sink receives one formatted log line per LogTime call.
type Sink func(line string)

// StdoutSink prints lines to standard output.
func StdoutSink(line string) {
	_, _ = fmt.Fprintln(os.Stdout, line)
}

// WriterSink writes each line to w followed by a newline.
func WriterSink(w io.Writer) Sink {
	return func(line string) {
		_, _ = fmt.Fprintln(w, line)
	}
}

// SlogSink emits each line as a structured record at the given level.
// A nil logger means slog.Default().
func SlogSink(logger *slog.Logger, level slog.Level) Sink {
	return func(line string) {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		l.Log(context.Background(), level, "block timed", "line", line)
	}
}
