package logger

import (
	"fmt"
	"strings"
	"sync"
)

// BasicLogger prints log lines to stdout using fmt.Printf.
type BasicLogger struct {
	mu     *sync.Mutex
	fields []Field
}

var _ Logger = (*BasicLogger)(nil)

// New returns a basic logger that writes to stdout.
func New() *BasicLogger {
	return &BasicLogger{mu: &sync.Mutex{}}
}

// Default returns the default basic logger implementation.
func Default() Logger {
	return New()
}

// With returns a logger that includes the fields on each log line.
func (l *BasicLogger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	return &BasicLogger{mu: l.mu, fields: mergeFields(l.fields, fields)}
}

func (l *BasicLogger) Debug(msg string, fields ...Field) { l.log("DEBUG", msg, fields...) }
func (l *BasicLogger) Info(msg string, fields ...Field)  { l.log("INFO", msg, fields...) }
func (l *BasicLogger) Warn(msg string, fields ...Field)  { l.log("WARN", msg, fields...) }
func (l *BasicLogger) Error(msg string, fields ...Field) { l.log("ERROR", msg, fields...) }

func (l *BasicLogger) log(level, msg string, fields ...Field) {
	line := fmt.Sprintf("[%s] %s", level, msg)
	if rendered := formatFields(mergeFields(l.fields, fields)); rendered != "" {
		line += " " + rendered
	}
	l.mu.Lock()
	fmt.Printf("%s\n", line)
	l.mu.Unlock()
}

// mergeFields always allocates: derived loggers share l.fields across
// goroutines, so appending into its spare capacity is off limits.
func mergeFields(base, extra []Field) []Field {
	merged := make([]Field, 0, len(base)+len(extra))
	merged = append(merged, base...)
	return append(merged, extra...)
}

func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s=%s", f.Key, fmt.Sprint(f.Value)))
	}
	return strings.Join(parts, " ")
}
