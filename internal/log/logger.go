// Package log provides a minimal verbose logger for diagnostic output.
package log

import (
	"fmt"
	"io"
)

// Logger emits diagnostic messages when Enabled is true.
// Messages go to W, usually stderr, so they never mix with results.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// Printf writes a formatted line to W. It does nothing when Enabled is false.
func (l *Logger) Printf(format string, args ...any) {
	if !l.Enabled {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}
