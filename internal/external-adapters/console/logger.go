package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ochairo/intracompat/internal/domain/interfaces"
)

// Logger writes leveled log lines. Info lines are written bare since they
// carry the progress narrative of a run; other levels get a styled prefix.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	styles *Styles
	debug  bool
}

// NewLogger creates a logger writing to out
func NewLogger(out io.Writer, styles *Styles, debug bool) *Logger {
	return &Logger{out: out, styles: styles, debug: debug}
}

// Debug logs debug-level messages when verbose output is enabled
func (l *Logger) Debug(msg string, fields ...interfaces.Field) {
	if !l.debug {
		return
	}
	l.log(l.styles.Render(l.styles.Muted, "DEBUG: "), msg, fields)
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...interfaces.Field) {
	l.log("", msg, fields)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...interfaces.Field) {
	l.log(l.styles.Render(l.styles.Warn, "WARN: "), msg, fields)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...interfaces.Field) {
	l.log(l.styles.Render(l.styles.Error, "ERROR: "), msg, fields)
}

func (l *Logger) log(prefix, msg string, fields []interfaces.Field) {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(msg)
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, b.String())
}
