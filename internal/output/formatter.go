// Package output renders analysis reports as human-readable text or JSON.
package output

import (
	"io"

	"github.com/prosegauge/prosegauge/internal/analysis"
)

// Result pairs a report with the source it was computed from.
type Result struct {
	// Source names the passage origin: a file path, "<stdin>", or "<sample>".
	Source string
	Report *analysis.Report
}

// Formatter defines the interface for rendering analysis results.
type Formatter interface {
	Format(w io.Writer, results []Result) error
}
