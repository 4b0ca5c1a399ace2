package output

import (
	"encoding/json"
	"io"

	"github.com/prosegauge/prosegauge/internal/analysis"
)

// JSONFormatter outputs analysis results as a JSON array.
type JSONFormatter struct{}

type jsonResult struct {
	Source string           `json:"source"`
	Report *analysis.Report `json:"report"`
}

// Format writes results as a pretty-printed JSON array.
// An empty slice of results produces [].
func (f *JSONFormatter) Format(w io.Writer, results []Result) error {
	items := make([]jsonResult, 0, len(results))
	for _, res := range results {
		items = append(items, jsonResult{
			Source: res.Source,
			Report: res.Report,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
