package ui

import (
	"fmt"
	"io"
	"os"
)

// Logger writes prefixed lines to stderr so stdout stays free for results.
type Logger struct {
	Debug bool
	out   io.Writer
}

func NewLogger(debug bool) *Logger {
	return &Logger{Debug: debug, out: os.Stderr}
}

// WithOutput redirects the logger, mostly for tests.
func (l *Logger) WithOutput(w io.Writer) *Logger {
	l.out = w
	return l
}

func (l *Logger) Debugf(format string, args ...any) {
	if l.Debug {
		_, _ = fmt.Fprintf(l.out, "[DEBUG] "+format, args...)
	}
}

func (l *Logger) Infof(format string, args ...any) {
	_, _ = fmt.Fprintf(l.out, "[INFO] "+format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(l.out, "[ERROR] "+format, args...)
}
